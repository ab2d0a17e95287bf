package project

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"g2rapid/common/config"
	"g2rapid/common/logger"
)

type NameField string

const (
	ModuleName  NameField = "module_name"
	ProcName    NameField = "proc_name"
	ToolName    NameField = "tool_name"
	WorkobjName NameField = "workobj_name"
)

var nameDefaults = map[NameField]string{
	ModuleName:  "Module1",
	ProcName:    "Process",
	ToolName:    "Tool",
	WorkobjName: "POZ",
}

func (f NameField) Default() string {
	return nameDefaults[f]
}

// NameStatus tells a caller what happened to a name it tried to set.
type NameStatus int

const (
	NameAccepted NameStatus = iota
	NameDefaulted
	NameRejected
)

func (s NameStatus) String() string {
	switch s {
	case NameAccepted:
		return "accepted"
	case NameDefaulted:
		return "defaulted"
	case NameRejected:
		return "rejected"
	}
	return fmt.Sprintf("NameStatus(%d)", int(s))
}

type NamingParameters struct {
	ModuleName  string
	ProcName    string
	ToolName    string
	WorkobjName string
}

func DefaultNamingParameters() NamingParameters {
	return NamingParameters{
		ModuleName:  ModuleName.Default(),
		ProcName:    ProcName.Default(),
		ToolName:    ToolName.Default(),
		WorkobjName: WorkobjName.Default(),
	}
}

func (p NamingParameters) AsMap() map[string]interface{} {
	return map[string]interface{}{
		string(ModuleName):  p.ModuleName,
		string(ProcName):    p.ProcName,
		string(ToolName):    p.ToolName,
		string(WorkobjName): p.WorkobjName,
	}
}

// ConversionParameters: ArmSpeed 0 means "use the G-code feed rate".
type ConversionParameters struct {
	ArmSpeed int
	Zone     int
}

func (c ConversionParameters) AsMap() map[string]interface{} {
	return map[string]interface{}{"arm_speed": c.ArmSpeed, "zone": c.Zone}
}

// OrientationPresets are indices into a PresetCatalog; 0 is "custom".
type OrientationPresets struct {
	TCPPreset     int
	WorkobjPreset int
}

func (o OrientationPresets) AsMap() map[string]interface{} {
	return map[string]interface{}{"tcp_preset": o.TCPPreset, "workobj_preset": o.WorkobjPreset}
}

// AppSettings is the configuration consumed by the converter and formatter.
// Not safe for concurrent mutation; hand a Clone to background work.
type AppSettings struct {
	tcpObject  GeometricObject
	workObject GeometricObject
	parameters NamingParameters
	conversion ConversionParameters
	presets    OrientationPresets
}

func NewAppSettings() *AppSettings {
	self := &AppSettings{}
	self.tcpObject = NewGeometricObject()
	self.workObject = NewGeometricObject()
	self.parameters = DefaultNamingParameters()
	return self
}

func (self *AppSettings) Clone() *AppSettings {
	c := *self
	return &c
}

func (self *AppSettings) Parameters() NamingParameters {
	return self.parameters
}

func (self *AppSettings) Conversion() ConversionParameters {
	return self.conversion
}

func (self *AppSettings) OrientationPresets() OrientationPresets {
	return self.presets
}

func (self *AppSettings) TCPObject() GeometricObject {
	return self.tcpObject
}

func (self *AppSettings) WorkObject() GeometricObject {
	return self.workObject
}

func (self *AppSettings) SetArmSpeed(armSpeed int) error {
	if armSpeed < 0 {
		return fmt.Errorf("arm_speed %d: %w", armSpeed, ErrNegativeValue)
	}
	self.conversion.ArmSpeed = armSpeed
	return nil
}

func (self *AppSettings) SetZone(zone int) error {
	if zone < 0 {
		return fmt.Errorf("zone %d: %w", zone, ErrNegativeValue)
	}
	self.conversion.Zone = zone
	return nil
}

func (self *AppSettings) SetOrientationPresets(tcpPreset, workobjPreset int) {
	self.presets.TCPPreset = tcpPreset
	self.presets.WorkobjPreset = workobjPreset
}

// SetTCPPosition and the other geometry setters accept anything
// ParseCoordinateTriple does. On error the previous value is kept.
func (self *AppSettings) SetTCPPosition(value interface{}) error {
	p, err := ParseCoordinateTriple(value)
	if err != nil {
		return err
	}
	self.tcpObject.Position = p
	return nil
}

func (self *AppSettings) SetTCPOrientation(value interface{}) error {
	p, err := ParseCoordinateTriple(value)
	if err != nil {
		return err
	}
	self.tcpObject.Orientation = NewOrientation(EulerOrientation(p))
	return nil
}

func (self *AppSettings) SetWorkobjPosition(value interface{}) error {
	p, err := ParseCoordinateTriple(value)
	if err != nil {
		return err
	}
	self.workObject.Position = p
	return nil
}

func (self *AppSettings) SetWorkobjOrientation(value interface{}) error {
	p, err := ParseCoordinateTriple(value)
	if err != nil {
		return err
	}
	self.workObject.Orientation = NewOrientation(EulerOrientation(p))
	return nil
}

// SetName validates and stores one identifier. An empty value stores the
// field default; an invalid or blank value leaves the current one untouched. The
// failure is logged and reported only through the returned status.
func (self *AppSettings) SetName(field NameField, value string) NameStatus {
	name, status, err := ValidateName(field, value)
	if err != nil {
		logger.Warnf("keeping %s=%q: %v", field, self.name(field), err)
		return status
	}
	switch field {
	case ModuleName:
		self.parameters.ModuleName = name
	case ProcName:
		self.parameters.ProcName = name
	case ToolName:
		self.parameters.ToolName = name
	case WorkobjName:
		self.parameters.WorkobjName = name
	}
	return status
}

func (self *AppSettings) SetModuleName(name string) NameStatus {
	return self.SetName(ModuleName, name)
}

func (self *AppSettings) SetProcName(name string) NameStatus {
	return self.SetName(ProcName, name)
}

func (self *AppSettings) SetToolName(name string) NameStatus {
	return self.SetName(ToolName, name)
}

func (self *AppSettings) SetWorkobjName(name string) NameStatus {
	return self.SetName(WorkobjName, name)
}

func (self *AppSettings) name(field NameField) string {
	name, _ := self.parameters.AsMap()[string(field)].(string)
	return name
}

// ValidateName returns the value to store for field. An empty value selects
// the default; anything else is trimmed and then needs at least one letter or
// digit and nothing besides letters, digits and underscores.
func ValidateName(field NameField, value string) (string, NameStatus, error) {
	if _, ok := nameDefaults[field]; !ok {
		return "", NameRejected, fmt.Errorf("unknown name field %q", field)
	}
	if value == "" {
		return field.Default(), NameDefaulted, nil
	}
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return "", NameRejected, &InvalidNameError{Field: field, Value: value}
	}
	alnum := false
	for _, r := range cleaned {
		switch {
		case r == '_':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum = true
		default:
			return "", NameRejected, &InvalidNameError{Field: field, Value: value}
		}
	}
	if !alnum {
		return "", NameRejected, &InvalidNameError{Field: field, Value: value}
	}
	return cleaned, NameAccepted, nil
}

// ParseCoordinateTriple accepts "x, y, z" strings, [3]float64, []float64,
// Position and EulerOrientation. nil and unsupported kinds yield the origin.
func ParseCoordinateTriple(value interface{}) (Position, error) {
	switch v := value.(type) {
	case string:
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return Position{}, &CoordinateArityError{Got: len(parts)}
		}
		var values [3]float64
		for i := range parts {
			token := strings.TrimSpace(parts[i])
			val, err := strconv.ParseFloat(token, 64)
			if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
				return Position{}, &InvalidNumberError{Value: token}
			}
			values[i] = val
		}
		return Position{X: values[0], Y: values[1], Z: values[2]}, nil
	case [3]float64:
		return Position{X: v[0], Y: v[1], Z: v[2]}, nil
	case []float64:
		if len(v) != 3 {
			return Position{}, &CoordinateArityError{Got: len(v)}
		}
		return Position{X: v[0], Y: v[1], Z: v[2]}, nil
	case Position:
		return v, nil
	case EulerOrientation:
		return Position(v), nil
	}
	return Position{}, nil
}

func xyzMap(x, y, z float64) map[string]interface{} {
	return map[string]interface{}{"x": x, "y": y, "z": z}
}

func geometricMap(g GeometricObject) map[string]interface{} {
	e := g.Orientation.Euler()
	return map[string]interface{}{
		"position":    xyzMap(g.Position.X, g.Position.Y, g.Position.Z),
		"orientation": xyzMap(e.X, e.Y, e.Z),
	}
}

// AsMap renders the settings as the nested key/value document used for
// persistence.
func (self *AppSettings) AsMap() map[string]interface{} {
	return map[string]interface{}{
		"parameters":          self.parameters.AsMap(),
		"tcp_object":          geometricMap(self.tcpObject),
		"work_object":         geometricMap(self.workObject),
		"conversion":          self.conversion.AsMap(),
		"orientation_presets": self.presets.AsMap(),
	}
}

func readXYZ(section map[string]interface{}) Position {
	x, _ := config.Float(section, "x")
	y, _ := config.Float(section, "y")
	z, _ := config.Float(section, "z")
	return Position{X: x, Y: y, Z: z}
}

func readGeometric(section map[string]interface{}, g *GeometricObject) {
	if pos := config.Section(section, "position"); pos != nil {
		g.Position = readXYZ(pos)
	}
	if orient := config.Section(section, "orientation"); orient != nil {
		g.Orientation = NewOrientation(EulerOrientation(readXYZ(orient)))
	}
}

// FromMap applies a document produced by AsMap. Missing or empty sections are
// logged and leave the current values; unknown keys are ignored.
func (self *AppSettings) FromMap(data map[string]interface{}) {
	params := config.Section(data, "parameters")
	if len(params) == 0 {
		logger.Warnf("Missing parameters: the 'parameters' section is empty or missing.")
	} else {
		for _, field := range []NameField{ModuleName, ProcName, ToolName, WorkobjName} {
			if v, ok := config.String(params, string(field)); ok {
				self.SetName(field, v)
			}
		}
	}

	tcp := config.Section(data, "tcp_object")
	if len(tcp) == 0 {
		logger.Warnf("Missing TCP data: the 'tcp_object' section is empty or missing.")
	} else {
		readGeometric(tcp, &self.tcpObject)
	}

	work := config.Section(data, "work_object")
	if len(work) == 0 {
		logger.Warnf("Missing work data: the 'work_object' section is empty or missing.")
	} else {
		readGeometric(work, &self.workObject)
	}

	conv := config.Section(data, "conversion")
	if len(conv) == 0 {
		logger.Warnf("Missing conversion data: the 'conversion' section is empty or missing.")
	} else {
		if v, ok := config.Int(conv, "arm_speed"); ok {
			if err := self.SetArmSpeed(v); err != nil {
				logger.Warnf("ignoring conversion value: %v", err)
			}
		}
		if v, ok := config.Int(conv, "zone"); ok {
			if err := self.SetZone(v); err != nil {
				logger.Warnf("ignoring conversion value: %v", err)
			}
		}
	}

	presets := config.Section(data, "orientation_presets")
	if len(presets) == 0 {
		logger.Warnf("Missing presets data: the 'orientation_presets' section is empty or missing.")
	} else {
		if v, ok := config.Int(presets, "tcp_preset"); ok {
			self.presets.TCPPreset = v
		}
		if v, ok := config.Int(presets, "workobj_preset"); ok {
			self.presets.WorkobjPreset = v
		}
	}
}
