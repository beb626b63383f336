package engine

// Config carries the named game parameters. It is built once at process
// start and passed into the engine constructor; the engine never reads
// ambient state.
type Config struct {
	StartingMoney      int
	GoSalary           int
	BoardSize          int
	JailPosition       int
	JailFee            int
	MaxDoubles         int
	MaxJailTurns       int
	AuctionEnabled     bool
	CollectFreeParking bool
}

// DefaultConfig mirrors the standard US rule set.
func DefaultConfig() Config {
	return Config{
		StartingMoney:      1500,
		GoSalary:           200,
		BoardSize:          40,
		JailPosition:       10,
		JailFee:            50,
		MaxDoubles:         3,
		MaxJailTurns:       3,
		AuctionEnabled:     true,
		CollectFreeParking: false,
	}
}
