package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "termtris-local/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds 256-color palette indices, one per shape name.
type ConfigColors struct {
	I      int `json:"i"`
	J      int `json:"j"`
	L      int `json:"l"`
	O      int `json:"o"`
	T      int `json:"t"`
	S      int `json:"s"`
	Z      int `json:"z"`
	Shadow int `json:"shadow"`
	Empty  int `json:"empty"`
	Border int `json:"border"`
}

type ConfigSymbols struct {
	Cell   rune `json:"cell"`
	Shadow rune `json:"shadow"`
	Empty  rune `json:"empty"`
}

type Theme struct {
	DrawShadow bool          `json:"draw_shadow"`
	Colors     ConfigColors  `json:"colors"`
	Symbols    ConfigSymbols `json:"symbols"`
}

// ShapeColor returns the palette index for a shape name, or the empty color.
func (t Theme) ShapeColor(id byte) int {
	switch id {
	case 'i':
		return t.Colors.I
	case 'j':
		return t.Colors.J
	case 'l':
		return t.Colors.L
	case 'o':
		return t.Colors.O
	case 't':
		return t.Colors.T
	case 's':
		return t.Colors.S
	case 'z':
		return t.Colors.Z
	}
	return t.Colors.Empty
}

type GameConfig struct {
	Rows     int  `json:"rows"`
	Cols     int  `json:"cols"`
	TickRate int  `json:"tick_rate"`
	TickMS   int  `json:"tick_ms"`
	Autoplay bool `json:"autoplay"`
	Ramp     bool `json:"ramp"`
}

type SpectateConfig struct {
	Addr string `json:"addr"`
}

type Config struct {
	Theme    Theme          `json:"theme"`
	Game     GameConfig     `json:"game"`
	Spectate SpectateConfig `json:"spectate"`
	LogLevel string         `json:"log_level"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err = readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load reads a config file at an explicit path on top of the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Cell, c.Theme.Symbols.Shadow, c.Theme.Symbols.Empty} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if err := checkRange("rows", c.Game.Rows, 4, 40); err != nil {
		return err
	}
	if err := checkRange("cols", c.Game.Cols, 4, 30); err != nil {
		return err
	}
	if err := checkRange("tick_rate", c.Game.TickRate, 1, 20); err != nil {
		return err
	}
	if err := checkRange("tick_ms", c.Game.TickMS, 10, 1000); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log_level %q", c.LogLevel)}
	}
	return nil
}

// Level parses LogLevel; an empty value means info.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(c.LogLevel)
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &InvalidConfig{fmt.Sprintf("%s must be between %d and %d, got %d", name, lo, hi, v)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err = json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
