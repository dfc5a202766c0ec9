// Package config defines configuration structures for the pace CLI.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (PACE_ prefix)
//   - YAML configuration file
//
// # Structure
//
//	type Config struct {
//	    Total      int
//	    Estimator  string // "simple" or "ewma"
//	    Alpha      float64
//	    StartValue float64
//	    Batch      int
//	    MeanDelay  time.Duration
//	    Seed       int64
//	    Progress   bool
//	    Bar        BarConfig
//	}
//
//	type BarConfig struct {
//	    Length        int
//	    PercentDigits int
//	    Filled        string
//	    Unfilled      string
//	}
package config
