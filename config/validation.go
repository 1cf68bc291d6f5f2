package config

import "fmt"

func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Database.MaxConnections < 1 {
		return fmt.Errorf("invalid database max connections: %d", config.Database.MaxConnections)
	}

	if config.Database.MinConnections < 0 || config.Database.MinConnections > config.Database.MaxConnections {
		return fmt.Errorf("invalid database min connections: %d", config.Database.MinConnections)
	}

	if config.Report.DefaultWindowDays < 1 || config.Report.DefaultWindowDays > config.Report.MaxWindowDays {
		return fmt.Errorf("invalid report default window days: %d", config.Report.DefaultWindowDays)
	}

	if config.Report.DefaultRecordLimit < 1 || config.Report.DefaultRecordLimit > config.Report.MaxRecordLimit {
		return fmt.Errorf("invalid report default record limit: %d", config.Report.DefaultRecordLimit)
	}

	if config.Report.AlertRelThreshold < 0 || config.Report.AlertAbsThreshold < 0 {
		return fmt.Errorf("alert thresholds must be non-negative")
	}

	if config.Report.AlertAlpha <= 0 || config.Report.AlertAlpha >= 1 {
		return fmt.Errorf("invalid alert alpha: %f", config.Report.AlertAlpha)
	}

	return nil
}
