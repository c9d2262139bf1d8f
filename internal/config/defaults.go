package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultHelp = `🎲 Available commands:
/roll [target] [#comment] (alias /r) - roll d100 against a target number
/custom_roll <dice> [#comment] (alias /cr) - roll any dice, e.g. /cr 2d6+3
/create_sheet [#comment] (alias /cs) - roll STR, CON, POW, DEX, APP, SIZ, INT and EDU
/skill <value> [#comment] (aliases /sk5, /roll6) - skill check, 5th edition rules
/sk7 <value> [#comment] - skill check with hard and extreme successes
/op6 <status1> <status2> [name1] [name2] - opposed roll on the resistance table
/choose a,b,c - pick one option at random`

var defaults = map[string]any{
	"telegram.drop_pending_updates": true,
	"telegram.send_timeout":         10 * time.Second,

	"logger.level":             "info",
	"logger.json":              false,
	"logger.file.path":         "",
	"logger.file.max_size_mb":  10,
	"logger.file.max_backups":  5,
	"logger.file.max_age_days": 30,

	"database.path":            "storage.db",
	"database.stats_retention": 30 * 24 * time.Hour,

	"http.enabled": true,
	"http.addr":    ":3000",

	"scheduler.tasks.daily_report.enabled":     true,
	"scheduler.tasks.daily_report.schedule":    "0 0 9 * * *",
	"scheduler.tasks.stats_pruning.enabled":    true,
	"scheduler.tasks.stats_pruning.schedule":   "0 30 3 * * *",
	"scheduler.tasks.sql_maintenance.enabled":  true,
	"scheduler.tasks.sql_maintenance.schedule": "0 0 4 * * 0",

	"messages.invalid_expression":  "You have to give me a correct expression.",
	"messages.no_choices":          "Give me some comma separated choices, e.g. /choose left,right.",
	"messages.missing_skill_value": "Give me a skill value, e.g. /sk7 60.",
	"messages.invalid_statuses":    "Give me two statuses between 0 and 20, e.g. /op6 12 10.",
	"messages.help":                defaultHelp,
}

func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Defaults returns the configuration made of default values only. It is not
// validated and carries no token.
func Defaults() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return cfg, nil
}
