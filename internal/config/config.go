package config

import (
	"fmt"

	"airhhi/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains the
// environment, input/output locations and the static analysis tables (focus
// sets, seasons, analysis years). Values come from a YAML file with
// environment-variable overrides.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Data locates the input files and the output directory.
	Data struct {
		// ScheduleFile is the flight-schedule CSV (one row per airline,
		// route and month).
		ScheduleFile string `env:"DATA_SCHEDULE_FILE" env-default:"data/schedule.csv" yaml:"scheduleFile"`
		// SlotsDir holds per-airport slot CSVs (<AIRPORT>.csv) and the
		// per-airport new-entrant candidate files (<AIRPORT>_NEW_ENTRANT.csv).
		SlotsDir string `env:"DATA_SLOTS_DIR" env-default:"data/slots" yaml:"slotsDir"`
		// OutputDir receives all result tables.
		OutputDir string `env:"DATA_OUTPUT_DIR" env-default:"results" yaml:"outputDir"`
	} `yaml:"data"`

	// Analysis holds the static focus sets and period tables every analysis
	// is restricted to.
	Analysis struct {
		// FocusAirports are the coordinated German airports under study.
		FocusAirports []string `env:"ANALYSIS_FOCUS_AIRPORTS" env-default:"DUS,FRA,HAM,MUC,STR,SXF,TXL" yaml:"focusAirports"`
		// FocusRegions are the destination blocs under study, in raw form;
		// they are normalized before matching (GULF and MIDDLE EAST collapse
		// into one bloc).
		FocusRegions []string `env:"ANALYSIS_FOCUS_REGIONS" env-default:"WESTERN EUROPE,EASTERN EUROPE,NORTH AFRICA,GULF,MIDDLE EAST" yaml:"focusRegions"`
		// Seasons are the slot-allocation seasons, in chronological order.
		Seasons []string `env:"ANALYSIS_SEASONS" env-default:"S15,S16,S17,S18,S19" yaml:"seasons"`
		// SeasonNames maps season identifiers to display names.
		SeasonNames map[string]string `env:"ANALYSIS_SEASON_NAMES" env-default:"S15:Summer 2015,S16:Summer 2016,S17:Summer 2017,S18:Summer 2018,S19:Summer 2019" yaml:"seasonNames"`
		// SummerMonths restricts schedule rows to the IATA summer season.
		SummerMonths []int `env:"ANALYSIS_SUMMER_MONTHS" env-default:"4,5,6,7,8,9,10" yaml:"summerMonths"`
		// Years are the schedule years, in chronological order.
		Years []int `env:"ANALYSIS_YEARS" env-default:"2015,2016,2017,2018,2019" yaml:"years"`
		// TrackedGroup is the group whose expansion is measured on the
		// baseline group's routes.
		TrackedGroup string `env:"ANALYSIS_TRACKED_GROUP" env-default:"Lufthansa Group" yaml:"trackedGroup"`
		// BaselineGroup is the group whose historical route footprint
		// defines where expansion is measured.
		BaselineGroup string `env:"ANALYSIS_BASELINE_GROUP" env-default:"Air Berlin Group" yaml:"baselineGroup"`
	} `yaml:"analysis"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing file is not an error: defaults and environment variables
// cover the full configuration.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		// fall back to env/defaults when no config file is present
		if envErr := cleanenv.ReadEnv(&cfg); envErr != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the analyses cannot run on. Absent static
// tables are the one fatal error class of the whole program.
func (c *Config) Validate() error {
	if len(c.Analysis.FocusAirports) == 0 {
		return serrors.With(serrors.ErrConfig, "no focus airports configured")
	}
	if len(c.Analysis.FocusRegions) == 0 {
		return serrors.With(serrors.ErrConfig, "no focus regions configured")
	}
	if len(c.Analysis.Seasons) == 0 {
		return serrors.With(serrors.ErrConfig, "no seasons configured")
	}
	if len(c.Analysis.Years) == 0 {
		return serrors.With(serrors.ErrConfig, "no analysis years configured")
	}
	if c.Analysis.TrackedGroup == "" || c.Analysis.BaselineGroup == "" {
		return serrors.With(serrors.ErrConfig, "tracked and baseline groups must be configured")
	}

	return nil
}

// SeasonName returns the display name for a season identifier, falling back
// to the identifier itself.
func (c *Config) SeasonName(season string) string {
	if name, ok := c.Analysis.SeasonNames[season]; ok {
		return name
	}

	return season
}
