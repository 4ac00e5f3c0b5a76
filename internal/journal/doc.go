// Package journal turns committed write sessions into per-user journal
// entries and hands them to the queue.
//
// The pipeline has three stages:
//
//   - Capture converts a [models.Changeset] into change records restricted to
//     the snapshot schema, skipping clean modifications and synthesizing adds
//     for the rows an edge (relation or subscription) references.
//   - Router resolves the set of users whose snapshots must receive each
//     change, through one [OwnerResolver] per table.
//   - Group folds the routed changes into one [models.JournalEntry] per user,
//     in discovery order.
//
// [Publisher] runs the pipeline and enqueues the result. Workers later apply
// each entry in [DependencyOrder].
package journal
