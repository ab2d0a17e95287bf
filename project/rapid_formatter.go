package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v5"
)

const (
	// external axes unused: RAPID's 9E+09 marker
	extaxNone  = "[9E+09,9E+09,9E+09,9E+09,9E+09,9E+09]"
	homeJoints = "[0,8.5,24.5,0,57,0]"
	bodyIndent = "        "
)

var moduleTemplate = pongo2.Must(pongo2.FromString(`{% autoescape off %}MODULE {{ module_name }}
    {{ tool_data }}

    {{ workobj_data }}

    PROC main()
        {{ proc_name }};
    ENDPROC

    PROC {{ proc_name }}()
        {{ home_move }}
{{ body }}    ENDPROC
ENDMODULE
{% endautoescape %}`))

// formatNumber prints the shortest decimal that parses back to v, never in
// exponent form, and keeps a trailing ".0" on integral values.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func formatTriple(p Position) string {
	return "[" + formatNumber(p.X) + "," + formatNumber(p.Y) + "," + formatNumber(p.Z) + "]"
}

func formatQuaternion(q Quaternion) string {
	wxyz := q.WXYZ()
	parts := make([]string, len(wxyz))
	for i, v := range wxyz {
		parts[i] = formatNumber(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// FormatMoveL renders one linear move. The robtarget's leading [[x,y,z] is the
// shape CoordinateExtractor reads back.
func FormatMoveL(target Position, q Quaternion, speed, zone int, toolName, workobjName string) string {
	robtarget := fmt.Sprintf("[%s,%s,[0,0,0,0],%s]", formatTriple(target), formatQuaternion(q), extaxNone)
	return fmt.Sprintf("MoveL %s,v%d,z%d,%s\\WObj:=%s;", robtarget, speed, zone, toolName, workobjName)
}

func FormatToolData(params NamingParameters, tcp GeometricObject) string {
	return fmt.Sprintf("PERS tooldata %s:=[TRUE,[%s,%s],[1,%s,[1,0,0,0],0,0,0]];",
		params.ToolName,
		formatTriple(tcp.Position),
		formatQuaternion(tcp.Orientation.Quaternion()),
		formatTriple(tcp.CenterOfGravity()))
}

func FormatWorkobjData(params NamingParameters, workobj GeometricObject) string {
	return fmt.Sprintf("TASK PERS wobjdata %s:=[FALSE,TRUE,\"\",[%s,%s],[[0,0,0],[1,0,0,0]]];",
		params.WorkobjName,
		formatTriple(workobj.Position),
		formatQuaternion(workobj.Orientation.Quaternion()))
}

func formatHomeMove(params NamingParameters, conversion ConversionParameters) string {
	return fmt.Sprintf("MoveAbsJ [%s,%s],v%d,z%d,tool0\\Wobj:=%s;",
		homeJoints, extaxNone, conversion.ArmSpeed, conversion.Zone, params.WorkobjName)
}

// FormatModule assembles the program: declarations, a main procedure calling
// the motion procedure, and the motion procedure itself (home move first, then
// every line in order). Inputs are trusted.
func FormatModule(params NamingParameters, toolData, workobjData string, rapidLines []string, conversion ConversionParameters) (string, error) {
	var body strings.Builder
	for _, line := range rapidLines {
		body.WriteString(bodyIndent)
		body.WriteString(line)
		body.WriteString("\n")
	}
	out, err := moduleTemplate.Execute(pongo2.Context{
		"module_name":  params.ModuleName,
		"proc_name":    params.ProcName,
		"tool_data":    toolData,
		"workobj_data": workobjData,
		"home_move":    formatHomeMove(params, conversion),
		"body":         body.String(),
	})
	if err != nil {
		return "", fmt.Errorf("render module %s: %w", params.ModuleName, err)
	}
	return out, nil
}

// BuildRapidModule formats a full program from settings and instruction lines.
func BuildRapidModule(rapidLines []string, settings *AppSettings) (string, error) {
	if settings == nil {
		return "", ErrNilSettings
	}
	params := settings.Parameters()
	toolData := FormatToolData(params, settings.TCPObject())
	workobjData := FormatWorkobjData(params, settings.WorkObject())
	return FormatModule(params, toolData, workobjData, rapidLines, settings.Conversion())
}
