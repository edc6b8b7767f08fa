package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawShadow: true,
		Colors: ConfigColors{
			I:      51,
			J:      27,
			L:      208,
			O:      226,
			T:      129,
			S:      46,
			Z:      196,
			Shadow: 240,
			Empty:  234,
			Border: 245,
		},
		Symbols: ConfigSymbols{
			Cell:   '█',
			Shadow: '░',
			Empty:  ' ',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Rows:     20,
			Cols:     12,
			TickRate: 8,
			TickMS:   100,
			Autoplay: false,
			Ramp:     true,
		},
		LogLevel: "info",
	}
}
