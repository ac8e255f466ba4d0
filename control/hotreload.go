// control/hotreload.go
// Reloads a ConfigStore from its backing YAML file.

package control

// ReloadFromFile loads path and installs it, notifying listeners synchronously.
// The active config is left unchanged when the file is unreadable or invalid.
func (cs *ConfigStore) ReloadFromFile(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	return cs.SetSync(cfg)
}
