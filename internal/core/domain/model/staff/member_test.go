package staff_test

import (
	"testing"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	t.Run("should create a valid member", func(t *testing.T) {
		m, err := staff.NewMember("u1", "Maria", "maria@shop.com", staff.RoleOperador, "impressao", "Impressora", true)

		require.NoError(t, err)
		assert.Equal(t, "u1", m.ID())
		assert.Equal(t, "Maria", m.Nome())
		assert.Equal(t, "impressao", m.Departamento())
		assert.True(t, m.IsLeader())
		assert.False(t, m.IsAdmin())
		require.NoError(t, m.Validate())
	})

	t.Run("should accept Geral department", func(t *testing.T) {
		m, err := staff.NewMember("u2", "João", "joao@shop.com", staff.RoleAdmin, order.SectorGeral, "", false)

		require.NoError(t, err)
		assert.True(t, m.IsAdmin())
	})

	t.Run("should reject unknown department", func(t *testing.T) {
		_, err := staff.NewMember("u3", "Ana", "ana@shop.com", staff.RoleOperador, "marketing", "", false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		_, err := staff.NewMember("", "", "", staff.RoleOperador, "impressao", "", false)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value member fails validation", func(t *testing.T) {
		var m staff.Member
		assert.Equal(t, staff.ErrMemberIsNotConstructed, m.Validate())
	})
}

func TestMember_WorksInSector(t *testing.T) {
	operador, err := staff.NewMember("u1", "Maria", "maria@shop.com", staff.RoleOperador, "producao", "", false)
	require.NoError(t, err)
	geral, err := staff.NewMember("u2", "João", "joao@shop.com", staff.RoleOperador, order.SectorGeral, "", false)
	require.NoError(t, err)
	admin, err := staff.NewMember("u3", "Ana", "ana@shop.com", staff.RoleAdmin, "impressao", "", false)
	require.NoError(t, err)

	assert.True(t, operador.WorksInSector("producao"))
	assert.False(t, operador.WorksInSector("impressao"))
	assert.True(t, geral.WorksInSector("producao"))
	assert.True(t, geral.WorksInSector("expedicao"))
	assert.True(t, admin.WorksInSector("producao"), "admins belong to every sector")
}

func TestRoleFromName(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		role, err := staff.RoleFromName("Admin")
		require.NoError(t, err)
		assert.Equal(t, staff.RoleAdmin, role)

		role, err = staff.RoleFromName("Operador")
		require.NoError(t, err)
		assert.Equal(t, staff.RoleOperador, role)
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		_, err := staff.RoleFromName("Gerente")
		require.Error(t, err)
	})
}
