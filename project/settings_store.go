package project

import (
	"os"
	"sync"

	"g2rapid/common/config"
	"g2rapid/common/file"
	"g2rapid/common/logger"
)

// SettingsStore persists AppSettings as a JSON document.
type SettingsStore struct {
	settingsFile string
	lock         sync.Mutex
}

func NewSettingsStore(settingsFile string) *SettingsStore {
	self := &SettingsStore{settingsFile: settingsFile}
	self.initializeSettingsFile()
	return self
}

func (self *SettingsStore) initializeSettingsFile() {
	self.lock.Lock()
	defer self.lock.Unlock()
	if file.Exists(self.settingsFile) {
		return
	}
	if err := config.WriteJSON(self.settingsFile, NewAppSettings().AsMap()); err != nil {
		logger.Errorf("Cannot create settings file %s: %v", self.settingsFile, err)
		return
	}
	logger.Warnf("The settings file %s is created with basic values", self.settingsFile)
}

// Load never fails: a missing file is recreated with defaults and a broken
// file yields defaults.
func (self *SettingsStore) Load() *AppSettings {
	self.lock.Lock()
	data, err := config.ReadJSON(self.settingsFile)
	self.lock.Unlock()

	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("The settings file does not exist. Creating a new one with default values.")
			self.initializeSettingsFile()
		} else {
			logger.Errorf("Settings format error: %v", err)
		}
		return NewAppSettings()
	}

	settings := NewAppSettings()
	settings.FromMap(data)
	logger.Infof("Loading settings: successful: %v", settings.AsMap())
	return settings
}

func (self *SettingsStore) Save(settings *AppSettings) error {
	if settings == nil {
		return ErrNilSettings
	}
	self.lock.Lock()
	defer self.lock.Unlock()
	if err := config.WriteJSON(self.settingsFile, settings.AsMap()); err != nil {
		logger.Errorf("Saving error: %v", err)
		return err
	}
	logger.Infof("Settings successfully saved %v", settings.AsMap())
	return nil
}
