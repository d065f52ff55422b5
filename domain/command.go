package domain

// EditMessageCommand is an edit request as received at the boundary.
type EditMessageCommand struct {
	Room    RoomID
	Message MessageID
	UID     string
	Content string
}
