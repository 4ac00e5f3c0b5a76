package journal

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-db-journal/models"
)

// OwnerResolver decides which users' snapshots must receive a change to a
// row of one table. Creation reaches only the creator; modification and
// deletion also reach every snapshot that may embed a copy of the row.
type OwnerResolver interface {
	ResolveAdd(ctx context.Context, row models.Row) ([]int64, error)
	ResolveModify(ctx context.Context, row models.Row) ([]int64, error)
	ResolveDelete(ctx context.Context, row models.Row) ([]int64, error)
}

type profileOwners struct{ graph Graph }

func (r profileOwners) ResolveAdd(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

func (r profileOwners) ResolveModify(ctx context.Context, row models.Row) ([]int64, error) {
	followers, err := r.graph.FollowerUserIDs(ctx, row.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("resolve followers of %d: %w", row.OwnerID(), err)
	}
	return append([]int64{row.OwnerID()}, followers...), nil
}

func (r profileOwners) ResolveDelete(ctx context.Context, row models.Row) ([]int64, error) {
	return r.ResolveModify(ctx, row)
}

type cardOwners struct{ graph Graph }

func (r cardOwners) ResolveAdd(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

func (r cardOwners) ResolveModify(ctx context.Context, row models.Row) ([]int64, error) {
	subscribers, err := r.graph.CardSubscriberUserIDs(ctx, row.OwnerID())
	if err != nil {
		return nil, fmt.Errorf("resolve subscribers of %d: %w", row.OwnerID(), err)
	}
	return append([]int64{row.OwnerID()}, subscribers...), nil
}

func (r cardOwners) ResolveDelete(ctx context.Context, row models.Row) ([]int64, error) {
	return r.ResolveModify(ctx, row)
}

// relationOwners routes every relation change to the relation's owner only.
type relationOwners struct{}

func (relationOwners) ResolveAdd(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

func (relationOwners) ResolveModify(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

func (relationOwners) ResolveDelete(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

// subscriptionOwners routes every subscription change to the subscriber only.
type subscriptionOwners struct{}

func (subscriptionOwners) ResolveAdd(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

func (subscriptionOwners) ResolveModify(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

func (subscriptionOwners) ResolveDelete(_ context.Context, row models.Row) ([]int64, error) {
	return []int64{row.OwnerID()}, nil
}

// Routed is a change paired with the distinct users it must reach.
type Routed struct {
	Change
	Owners []int64
}

type Router struct {
	profiles      OwnerResolver
	cards         OwnerResolver
	relations     OwnerResolver
	subscriptions OwnerResolver
}

// NewRouter returns a Router with one resolver per table, all backed by graph.
func NewRouter(graph Graph) *Router {
	return &Router{
		profiles:      profileOwners{graph: graph},
		cards:         cardOwners{graph: graph},
		relations:     relationOwners{},
		subscriptions: subscriptionOwners{},
	}
}

func (r *Router) resolver(t models.Table) (OwnerResolver, error) {
	switch t {
	case models.TableProfile:
		return r.profiles, nil
	case models.TableCard:
		return r.cards, nil
	case models.TableProfileRelation:
		return r.relations, nil
	case models.TableCardSubscription:
		return r.subscriptions, nil
	default:
		return nil, fmt.Errorf("%w: unknown table %d", ErrUnroutable, t)
	}
}

// Owners resolves the distinct users that must receive change, in the
// order the resolver returned them. Synthesized records are resolved with
// the resolver and action of the edge they came from.
func (r *Router) Owners(ctx context.Context, change Change) ([]int64, error) {
	resolver, err := r.resolver(change.Origin.Table())
	if err != nil {
		return nil, err
	}

	action := change.Record.Action
	if change.Origin.Table() != change.Record.Table {
		action = models.ActionAdd
	}

	var owners []int64
	switch action {
	case models.ActionAdd:
		owners, err = resolver.ResolveAdd(ctx, change.Origin)
	case models.ActionModify:
		owners, err = resolver.ResolveModify(ctx, change.Origin)
	case models.ActionDelete:
		owners, err = resolver.ResolveDelete(ctx, change.Origin)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrUnroutable, action)
	}
	if err != nil {
		return nil, err
	}

	distinct := make([]int64, 0, len(owners))
	for _, id := range owners {
		if id > 0 && !slices.Contains(distinct, id) {
			distinct = append(distinct, id)
		}
	}
	if len(distinct) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrUnroutable, change.Record.Table, change.Record.UUID)
	}
	return distinct, nil
}

// Route pairs every change with each of its owners, keeping capture order.
func (r *Router) Route(ctx context.Context, changes []Change) ([]Routed, error) {
	routed := make([]Routed, 0, len(changes))
	for _, change := range changes {
		owners, err := r.Owners(ctx, change)
		if err != nil {
			return nil, err
		}
		routed = append(routed, Routed{Change: change, Owners: owners})
	}
	return routed, nil
}
