package room

// RoomType labels the gameplay role of a room. The type decides which
// floor variant fills the room and which spawn markers it receives.
type RoomType int

const (
	RoomEmpty RoomType = iota
	RoomStart
	RoomEnd
	RoomMonster
	RoomTrap
	RoomReward
	RoomNPC
	RoomLobby
	RoomBoss
	RoomFinal
)

func (t RoomType) String() string {
	switch t {
	case RoomEmpty:
		return "EMPTY"
	case RoomStart:
		return "START"
	case RoomEnd:
		return "END"
	case RoomMonster:
		return "MONSTER"
	case RoomTrap:
		return "TRAP"
	case RoomReward:
		return "REWARD"
	case RoomNPC:
		return "NPC"
	case RoomLobby:
		return "LOBBY"
	case RoomBoss:
		return "BOSS"
	case RoomFinal:
		return "FINAL"
	default:
		return "UNKNOWN"
	}
}

// ParseRoomType maps a type name back to its RoomType. The second
// return is false for names outside the vocabulary.
func ParseRoomType(name string) (RoomType, bool) {
	switch name {
	case "EMPTY":
		return RoomEmpty, true
	case "START":
		return RoomStart, true
	case "END":
		return RoomEnd, true
	case "MONSTER":
		return RoomMonster, true
	case "TRAP":
		return RoomTrap, true
	case "REWARD":
		return RoomReward, true
	case "NPC":
		return RoomNPC, true
	case "LOBBY":
		return RoomLobby, true
	case "BOSS":
		return RoomBoss, true
	case "FINAL":
		return RoomFinal, true
	default:
		return RoomEmpty, false
	}
}
