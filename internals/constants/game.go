package constants

// Game type enum (games.game_type).
const (
	GameTypeNormal = 1
	GameTypeRanked = 2
)

// Time-control enum (games.game_time).
const (
	GameTimeNormal = 1
	GameTimeBlitz  = 2
	GameTimeRapid  = 3
)

// Board geometry. Every table is an 8x8 grid; slot positions are 1-based.
const (
	BoardSide     = 8
	SlotsPerBoard = BoardSide * BoardSide
)

var (
	GameTypes = []int{GameTypeNormal, GameTypeRanked}
	GameTimes = []int{GameTimeNormal, GameTimeBlitz, GameTimeRapid}
)

func ValidGameType(t int) bool {
	for _, v := range GameTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidGameTime(t int) bool {
	for _, v := range GameTimes {
		if v == t {
			return true
		}
	}
	return false
}
