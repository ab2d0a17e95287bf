package project

import (
	"sort"
	"strconv"

	"g2rapid/common/config"
	"g2rapid/common/file"
	"g2rapid/common/logger"
)

const CustomPresetName = "Custom"

type OrientationPreset struct {
	Name string
	X    float64
	Y    float64
	Z    float64
}

func (p OrientationPreset) Euler() EulerOrientation {
	return EulerOrientation{X: p.X, Y: p.Y, Z: p.Z}
}

func (p OrientationPreset) asMap() map[string]interface{} {
	return map[string]interface{}{"name": p.Name, "x": p.X, "y": p.Y, "z": p.Z}
}

// PresetCatalog holds named orientations for the TCP and the work object,
// keyed from 1. Index 0 stands for a custom orientation.
type PresetCatalog struct {
	tcpPresets     map[int]OrientationPreset
	workobjPresets map[int]OrientationPreset
}

func defaultPresetTable() map[int]OrientationPreset {
	return map[int]OrientationPreset{
		1: {Name: "Rotation about X axis", X: 90},
		2: {Name: "Rotation about Y axis", Y: 90},
		3: {Name: "Rotation about Z axis", Z: 90},
	}
}

func DefaultPresetCatalog() *PresetCatalog {
	return &PresetCatalog{
		tcpPresets:     defaultPresetTable(),
		workobjPresets: defaultPresetTable(),
	}
}

// LoadPresetCatalog reads presetFile, writing the defaults there first when it
// does not exist. Unreadable content falls back to the defaults.
func LoadPresetCatalog(presetFile string) *PresetCatalog {
	if !file.Exists(presetFile) {
		catalog := DefaultPresetCatalog()
		if err := config.WriteJSON(presetFile, catalog.AsMap()); err != nil {
			logger.Errorf("Error creating default position presets: %v", err)
		} else {
			logger.Infof("Created default position presets")
		}
		return catalog
	}

	data, err := config.ReadJSON(presetFile)
	if err != nil {
		logger.Errorf("Error loading position presets: %v", err)
		return DefaultPresetCatalog()
	}
	catalog := &PresetCatalog{
		tcpPresets:     readPresetTable(config.Section(data, "tcp_presets")),
		workobjPresets: readPresetTable(config.Section(data, "workobj_presets")),
	}
	logger.Infof("Position presets loaded successfully")
	return catalog
}

func readPresetTable(section map[string]interface{}) map[int]OrientationPreset {
	table := map[int]OrientationPreset{}
	for key := range section {
		index, err := strconv.Atoi(key)
		if err != nil || index < 1 {
			logger.Warnf("Ignoring preset with invalid index %q", key)
			continue
		}
		entry := config.Section(section, key)
		if entry == nil {
			logger.Warnf("Ignoring malformed preset %q", key)
			continue
		}
		name, _ := config.String(entry, "name")
		p := readXYZ(entry)
		table[index] = OrientationPreset{Name: name, X: p.X, Y: p.Y, Z: p.Z}
	}
	return table
}

func (self *PresetCatalog) AsMap() map[string]interface{} {
	tables := func(t map[int]OrientationPreset) map[string]interface{} {
		m := map[string]interface{}{}
		for k, v := range t {
			m[strconv.Itoa(k)] = v.asMap()
		}
		return m
	}
	return map[string]interface{}{
		"tcp_presets":     tables(self.tcpPresets),
		"workobj_presets": tables(self.workobjPresets),
	}
}

func (self *PresetCatalog) TCPPreset(index int) (OrientationPreset, bool) {
	p, ok := self.tcpPresets[index]
	return p, ok
}

func (self *PresetCatalog) WorkobjPreset(index int) (OrientationPreset, bool) {
	p, ok := self.workobjPresets[index]
	return p, ok
}

func presetNames(table map[int]OrientationPreset) []string {
	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	names := []string{CustomPresetName}
	for _, k := range keys {
		names = append(names, table[k].Name)
	}
	return names
}

func (self *PresetCatalog) TCPPresetNames() []string {
	return presetNames(self.tcpPresets)
}

func (self *PresetCatalog) WorkobjPresetNames() []string {
	return presetNames(self.workobjPresets)
}

// ApplyTo copies the orientations selected by the settings' preset indices
// into the settings. Index 0 and unknown indices leave the orientation as is.
func (self *PresetCatalog) ApplyTo(settings *AppSettings) {
	selected := settings.OrientationPresets()
	if p, ok := self.TCPPreset(selected.TCPPreset); ok {
		settings.SetTCPOrientation(p.Euler())
	} else if selected.TCPPreset != 0 {
		logger.Warnf("Unknown TCP preset %d", selected.TCPPreset)
	}
	if p, ok := self.WorkobjPreset(selected.WorkobjPreset); ok {
		settings.SetWorkobjOrientation(p.Euler())
	} else if selected.WorkobjPreset != 0 {
		logger.Warnf("Unknown work object preset %d", selected.WorkobjPreset)
	}
}
