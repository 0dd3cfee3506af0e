package services

import (
	"sort"
	"strconv"
	"strings"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"
)

// SectorAll selects every sector in a board projection.
const SectorAll = "ALL"

// ViewMode selects which board layout a projection produces.
type ViewMode int

const (
	// ViewStageBoard groups orders into one column per pipeline stage plus
	// a terminal done column.
	ViewStageBoard ViewMode = iota

	// ViewMyTasks groups the acting user's assigned work into pending and
	// in-progress columns.
	ViewMyTasks

	// ViewTeam groups assigned work into one column per visible team
	// member plus an unassigned backlog.
	ViewTeam
)

// Item is one card on the board: an order pinned to the production step the
// card is about. In my-tasks and team views the same order can appear once
// per relevant step.
type Item struct {
	Order *order.Order
	Step  order.Step
}

// Group stacks the cards of the line items sharing one O.R. number.
// A single-item group renders as a plain card, multi-item groups as a
// collapsible stack.
type Group struct {
	OrderNumber string
	Client      string
	Items       []Item
}

// Column is one vertical lane of the board.
type Column struct {
	ID     string
	Label  string
	Groups []Group
}

// ProjectionParams carries everything a projection depends on. Projections
// are pure: the same params always produce the same columns.
type ProjectionParams struct {
	// Orders is the full in-memory order set; the projector applies the
	// search, priority and archival filters itself.
	Orders []*order.Order

	// Members is the full team; only used in team view.
	Members []staff.Member

	// Actor is the user looking at the board.
	Actor staff.Member

	// ViewMode selects the board layout.
	ViewMode ViewMode

	// SectorFilter scopes team view to one production sector.
	// SectorAll (or empty) means no scoping.
	SectorFilter string

	// SearchTerm filters orders by free-text match; empty matches all.
	SearchTerm string

	// PriorityFilter keeps only orders of one priority.
	// order.PriorityUnknown means no filtering.
	PriorityFilter order.Priority
}

// BoardProjector derives the column data of every board view from the order
// set. It holds no state of its own.
type BoardProjector interface {
	// Project produces the grouped-and-sorted columns for the requested
	// view. The result is freshly allocated on every call.
	Project(params ProjectionParams) []Column
}

var _ BoardProjector = (*boardProjector)(nil)

type boardProjector struct{}

// NewBoardProjector creates the projection engine.
func NewBoardProjector() BoardProjector {
	return &boardProjector{}
}

func (p *boardProjector) Project(params ProjectionParams) []Column {
	orders := p.filterOrders(params)

	switch params.ViewMode {
	case ViewMyTasks:
		return p.projectMyTasks(orders, params.Actor)
	case ViewTeam:
		return p.projectTeam(orders, params)
	default:
		return p.projectStageBoard(orders)
	}
}

// filterOrders applies the shared filtering pipeline: text search, priority
// and archival. Board views never show archived orders.
func (p *boardProjector) filterOrders(params ProjectionParams) []*order.Order {
	var filtered []*order.Order
	for _, o := range params.Orders {
		if o.IsArchived() {
			continue
		}
		if !o.MatchesSearch(params.SearchTerm) {
			continue
		}
		if params.PriorityFilter != order.PriorityUnknown && o.Priority() != params.PriorityFilter {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// projectStageBoard places every order into the column of its current stage,
// independent of assignments.
func (p *boardProjector) projectStageBoard(orders []*order.Order) []Column {
	buckets := make(map[string][]Item)
	for _, o := range orders {
		stage, done := o.CurrentStage()
		if done {
			buckets["done"] = append(buckets["done"], Item{Order: o, Step: order.StepExpedicao})
			continue
		}
		buckets[stage.Key()] = append(buckets[stage.Key()], Item{Order: o, Step: stage})
	}

	columns := make([]Column, 0, len(order.Steps())+1)
	for _, step := range order.Steps() {
		columns = append(columns, Column{
			ID:     step.Key(),
			Label:  step.Department(),
			Groups: buildGroups(buckets[step.Key()]),
		})
	}
	columns = append(columns, Column{
		ID:     "done",
		Label:  "Concluído",
		Groups: buildGroups(buckets["done"]),
	})
	return columns
}

// projectMyTasks collects the order/step pairs assigned to the actor that are
// not yet finished. A pair is in progress once its status is Em Produção or
// work was started at some point.
func (p *boardProjector) projectMyTasks(orders []*order.Order, actor staff.Member) []Column {
	var pending, inProgress []Item
	for _, o := range orders {
		for _, step := range order.Steps() {
			assignment, ok := o.Assignment(step)
			if !ok || assignment.UserID() != actor.ID() {
				continue
			}
			if o.Status(step) == order.StatusConcluido {
				continue
			}
			item := Item{Order: o, Step: step}
			if o.Status(step) == order.StatusEmProducao || assignment.IsStarted() {
				inProgress = append(inProgress, item)
			} else {
				pending = append(pending, item)
			}
		}
	}

	return []Column{
		{ID: "pending", Label: "Pendentes", Groups: buildGroups(pending)},
		{ID: "in_progress", Label: "Em Produção", Groups: buildGroups(inProgress)},
	}
}

// projectTeam distributes assigned order/step pairs over the visible team
// member columns and, under a concrete sector filter, collects the sector's
// unassigned unfinished work into the backlog column. The backlog column is
// omitted when it holds nothing.
func (p *boardProjector) projectTeam(orders []*order.Order, params ProjectionParams) []Column {
	sector := params.SectorFilter
	if sector == "" {
		sector = SectorAll
	}

	members := p.visibleMembers(params.Members, params.Actor, sector)

	memberItems := make(map[string][]Item, len(members))
	memberSeen := make(map[string]map[string]bool, len(members))
	for _, m := range members {
		memberItems[m.ID()] = nil
		memberSeen[m.ID()] = make(map[string]bool)
	}

	var backlog []Item
	for _, o := range orders {
		placed := false
		for _, step := range order.Steps() {
			if sector != SectorAll && step.Key() != sector {
				continue
			}
			assignment, ok := o.Assignment(step)
			if !ok {
				continue
			}
			seen, visible := memberSeen[assignment.UserID()]
			if !visible {
				continue
			}
			// one card per order per member column, even when the
			// member holds several steps of it
			if seen[o.ID().String()] {
				placed = true
				continue
			}
			seen[o.ID().String()] = true
			memberItems[assignment.UserID()] = append(memberItems[assignment.UserID()], Item{Order: o, Step: step})
			placed = true
		}

		if placed || sector == SectorAll {
			continue
		}
		sectorStep, err := order.StepFromKey(sector)
		if err != nil {
			continue
		}
		if _, assigned := o.Assignment(sectorStep); assigned {
			continue
		}
		if o.Status(sectorStep) != order.StatusConcluido {
			backlog = append(backlog, Item{Order: o, Step: sectorStep})
		}
	}

	var columns []Column
	if len(backlog) > 0 {
		columns = append(columns, Column{
			ID:     "unassigned",
			Label:  "Não Atribuídos",
			Groups: buildGroups(backlog),
		})
	}
	for _, m := range members {
		groups := buildGroups(memberItems[m.ID()])
		// admin columns exist only while the admin holds work in view,
		// except for sector leads which always keep their column
		if len(groups) == 0 && m.IsAdmin() && !(m.IsLeader() && m.Departamento() == sector) {
			continue
		}
		columns = append(columns, Column{ID: m.ID(), Label: m.Nome(), Groups: groups})
	}
	return columns
}

// visibleMembers selects and orders the team columns: the actor never sees
// their own column; under a concrete sector filter only sector members,
// Geral members and admins qualify. Admins sort first, then by name.
func (p *boardProjector) visibleMembers(members []staff.Member, actor staff.Member, sector string) []staff.Member {
	var visible []staff.Member
	for _, m := range members {
		if m.ID() == actor.ID() {
			continue
		}
		if sector != SectorAll {
			inSector := m.Departamento() == sector
			generalOrAdmin := m.Departamento() == order.SectorGeral || m.IsAdmin()
			if !inSector && !generalOrAdmin {
				continue
			}
		}
		visible = append(visible, m)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].IsAdmin() != visible[j].IsAdmin() {
			return visible[i].IsAdmin()
		}
		return visible[i].Nome() < visible[j].Nome()
	})
	return visible
}

// buildGroups stacks items sharing an O.R. number and applies the board
// sorting rules: items within a group by line-item reference, groups by
// priority (Alta first) then ascending delivery date.
func buildGroups(items []Item) []Group {
	byOR := make(map[string][]Item)
	var orNumbers []string
	for _, item := range items {
		if _, ok := byOR[item.Order.OR()]; !ok {
			orNumbers = append(orNumbers, item.Order.OR())
		}
		byOR[item.Order.OR()] = append(byOR[item.Order.OR()], item)
	}

	groups := make([]Group, 0, len(orNumbers))
	for _, or := range orNumbers {
		groupItems := byOR[or]
		sort.SliceStable(groupItems, func(i, j int) bool {
			return lessNumeroItem(groupItems[i].Order.NumeroItem(), groupItems[j].Order.NumeroItem())
		})
		groups = append(groups, Group{
			OrderNumber: or,
			Client:      groupItems[0].Order.Cliente(),
			Items:       groupItems,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Items[0].Order, groups[j].Items[0].Order
		aAlta := a.Priority() == order.PriorityAlta
		bAlta := b.Priority() == order.PriorityAlta
		if aAlta != bAlta {
			return aAlta
		}
		return a.DataEntrega() < b.DataEntrega()
	})
	return groups
}

// lessNumeroItem compares line-item references numerically when both parse
// as integers ("2" before "10"), falling back to plain string order.
func lessNumeroItem(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSpace(a))
	nb, errB := strconv.Atoi(strings.TrimSpace(b))
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
