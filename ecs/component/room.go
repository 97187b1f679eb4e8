package component

// RoomMember ties an entity to the room instance that spawned it.
type RoomMember struct {
	RoomID string
}

var RoomMemberComponent = NewComponent[RoomMember]()
