package config

import "time"

// Timer durations.
const (
	TickInterval = time.Second
)

// Dial behaviour.
const (
	TiltOffset = 10.0
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Database/application settings.
const (
	AppName       = "countdial"
	DBFileName    = "countdial.db"
	LogFileName   = "countdial.log"
	EnvPrefix     = "COUNTDIAL_"
	EnvConfigPath = "COUNTDIAL_CONFIG"
)

// Setting keys.
const (
	SettingBaseAngle   = "dial.base_angle"
	SettingOffsetAngle = "dial.offset_angle"
	SettingTheme       = "theme"
)
