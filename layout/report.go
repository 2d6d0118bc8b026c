package layout

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

// Report is a hierarchical description of a layout: the container at the
// root and one child per field, ordered by shift.
type Report struct {
	Name     string   `json:"name"`
	Mask     string   `json:"mask,omitempty"`
	Shift    int      `json:"shift"`
	Width    int      `json:"width"`
	Max      uint64   `json:"max"`
	Children []Report `json:"children,omitempty"`
}

// JSON returns a JSON string representation of the Report.
func (r Report) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"error": "%s"}`, err.Error())
	}
	return string(b)
}

// String returns the Report formatted as a tree.
func (r Report) String() string {
	var sb strings.Builder
	r.buildString(&sb, 0)
	return sb.String()
}

func (r Report) buildString(sb *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	if r.Mask == "" {
		sb.WriteString(fmt.Sprintf("%s- %s: u%d\n", prefix, r.Name, r.Width))
	} else {
		sb.WriteString(fmt.Sprintf("%s- %s: %s bits [%d:%d], max %s\n",
			prefix, r.Name, r.Mask, r.Shift+r.Width-1, r.Shift, commaUint(r.Max)))
	}
	for _, child := range r.Children {
		child.buildString(sb, indent+1)
	}
}

func commaUint(v uint64) string {
	if v <= math.MaxInt64 {
		return humanize.Comma(int64(v))
	}
	return humanize.BigComma(new(big.Int).SetUint64(v))
}
