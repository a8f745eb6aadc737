package domain

// ConfigLoader loads the configuration rooted at dir.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}

// CalculationHistory persists performed calculations.
type CalculationHistory interface {
	Save(entry CalculationEntry) error
	Load() ([]CalculationEntry, error)
	Clear() error
}
