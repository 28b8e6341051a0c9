package entity

import "github.com/google/uuid"

// Owned is implemented by every resource whose access is restricted to a
// single user. The returned ID is the end of the resource's ownership chain.
type Owned interface {
	OwnerID() uuid.UUID
}

// OwnedBy reports whether the resource belongs to callerID. Nil resources and
// resources with an unresolved chain are never owned.
func OwnedBy(resource Owned, callerID uuid.UUID) bool {
	if resource == nil || callerID == uuid.Nil {
		return false
	}

	ownerID := resource.OwnerID()

	return ownerID != uuid.Nil && ownerID == callerID
}
