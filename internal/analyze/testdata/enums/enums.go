package enums

type (
	// Level is declared in a type group.
	//
	//enumrepr:panic_into(uint8) panic_into(int)
	//go:generate echo hi
	Level int64

	NoDoc uint16
)

const (
	LevelHigh Level = 3
	LevelLow  Level = 1
	levelMid  Level = 2
)

//enumrepr:panic_into(uint8)
type Flag byte

const FlagOn Flag = 1

const FlagOff Flag = 0

type Name string

type Alias = uint8

type Wrapper struct{}

//enumrepr:panic_into
type Missing uint8

//enumrepr:panic_into(uint8
type Unclosed uint8

// Dup repeats a discriminant.
type Dup int8

const (
	DupA Dup = 1
	DupB Dup = 1
	DupC Dup = -1
)

const Untyped = 7
