// Package authz implements the ownership check used for mutating operations.
//
// There is no role hierarchy and no delegation: an actor may mutate a resource
// iff they own it. Reads are unrestricted for authenticated actors, so no read
// predicate exists here.
package authz

// Owned is implemented by any resource that records its owning user.
type Owned interface {
	OwnerID() uint
}

// CanMutate reports whether the actor may edit or delete the resource.
// It is a pure predicate: denial is signaled to the caller, never raised.
func CanMutate(actorID uint, resource Owned) bool {
	if resource == nil {
		return false
	}
	return resource.OwnerID() == actorID
}
