// Command bfinspect analyzes bitfield masks and packs or unpacks containers.
//
//	bfinspect -fields version=0xf0000000,ihl=0x0f000000 -encode version=4,ihl=5 -endian be
//	bfinspect -fields 0x0f00 -decode 0x0500
//	bfinspect -fields 0x00f00000 -bytes 00007000 -endian le
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/cpu"

	"Bitfield/bitfield"
	"Bitfield/bits"
	"Bitfield/errutil"
	"Bitfield/layout"
)

type options struct {
	fields string
	width  int
	encode string
	decode string
	bytes  string
	endian string
	json   bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bfinspect: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fail("%v", err)
	}
}

func run(args []string, out io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("bfinspect", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.fields, "fields", "", "Comma-separated field masks, optionally named: name=0xMASK")
	fs.IntVar(&opts.width, "width", 0, "Container width in bits (8, 16, 32, 64); derived from the masks when 0")
	fs.StringVar(&opts.encode, "encode", "", "Comma-separated values to pack, positional or name=value")
	fs.StringVar(&opts.decode, "decode", "", "Host-order container value to unpack")
	fs.StringVar(&opts.bytes, "bytes", "", "Hex-encoded stored container to unpack, read in -endian order")
	fs.StringVar(&opts.endian, "endian", "host", "Stored byte order: host, le or be")
	fs.BoolVar(&opts.json, "json", false, "Print the layout report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := errutil.First(checkFields(opts.fields), checkEndian(opts.endian)); err != nil {
		return err
	}

	l, order, err := buildLayout(opts.fields, opts.width)
	if err != nil {
		return err
	}

	report := l.Report()
	if opts.json {
		fmt.Fprintln(out, report.JSON())
	} else {
		fmt.Fprint(out, report.String())
		log.Printf("%s: %d fields, %s encodable values, fingerprint %016x",
			l.Name(), len(l.Fields()), humanize.Comma(int64(countValues(l))), l.Fingerprint())
	}

	if opts.encode != "" {
		values, err := parseValues(order, opts.encode)
		if err != nil {
			return err
		}
		c, err := l.Pack(values)
		if err != nil {
			return err
		}
		stored := storedBytes(l.Width(), opts.endian, c)
		fmt.Fprintf(out, "container: 0x%0*x\n", l.Width()/4, c)
		fmt.Fprintf(out, "stored (%s): % x\n", opts.endian, stored)
	}

	var container uint64
	var haveContainer bool
	switch {
	case opts.bytes != "":
		b, err := hex.DecodeString(strings.ReplaceAll(opts.bytes, " ", ""))
		if err != nil {
			return fmt.Errorf("-bytes: %w", err)
		}
		if len(b) != l.Width()/8 {
			return fmt.Errorf("-bytes: need %d bytes for u%d, got %d", l.Width()/8, l.Width(), len(b))
		}
		container, haveContainer = loadStored(l.Width(), opts.endian, b), true
	case opts.decode != "":
		container, err = strconv.ParseUint(opts.decode, 0, l.Width())
		if err != nil {
			return fmt.Errorf("-decode: %w", err)
		}
		haveContainer = true
	}
	if haveContainer {
		values := l.Unpack(container)
		for _, name := range l.Fields() {
			fmt.Fprintf(out, "%s = %d\n", name, values[name])
		}
	}
	return nil
}

func checkFields(fields string) error {
	if fields == "" {
		return errors.New("-fields must be non-empty")
	}
	return nil
}

func checkEndian(endian string) error {
	if endian != "host" && endian != "le" && endian != "be" {
		return fmt.Errorf("-endian must be host, le or be, got %q", endian)
	}
	return nil
}

// buildLayout returns the layout and its field names in the order given on
// the command line; l.Fields() is ordered by shift instead.
func buildLayout(spec string, width int) (*layout.Layout, []string, error) {
	type namedMask struct {
		name string
		mask uint64
	}
	var masks []namedMask
	var union uint64
	for i, part := range splitCSV(spec) {
		name, raw := fmt.Sprintf("f%d", i), part
		if k, v, ok := strings.Cut(part, "="); ok {
			name, raw = k, v
		}
		m, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse mask %q: %w", raw, err)
		}
		masks = append(masks, namedMask{name: name, mask: m})
		union |= m
	}
	if union != 0 {
		span := bits.MostSignificantBit(union) + 1
		log.Printf("masks span %d bits, candidate widths %v", span, layout.WidthCandidates(span))
	}
	if width == 0 {
		width = layout.WidthForMask(union)
	}

	l, err := layout.New("container", width)
	if err != nil {
		return nil, nil, err
	}
	order := make([]string, 0, len(masks))
	for _, nm := range masks {
		if err := l.Add(nm.name, nm.mask); err != nil {
			return nil, nil, err
		}
		order = append(order, nm.name)
	}
	return l, order, nil
}

// parseValues maps positional values onto fields in command-line order.
func parseValues(fields []string, spec string) (map[string]uint64, error) {
	values := make(map[string]uint64)
	for i, part := range splitCSV(spec) {
		name, raw, named := strings.Cut(part, "=")
		if !named {
			if i >= len(fields) {
				return nil, fmt.Errorf("value %q has no field", part)
			}
			name, raw = fields[i], part
		}
		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q: %w", raw, err)
		}
		values[name] = v
	}
	return values, nil
}

// countValues returns the number of distinct packed containers, saturating
// at MaxInt64.
func countValues(l *layout.Layout) uint64 {
	total := 0
	for _, name := range l.Fields() {
		m, _ := l.Mask(name)
		total += bits.OnesCount(m)
	}
	if total >= 63 {
		return 1<<63 - 1
	}
	return 1 << uint(total)
}

func storedBytes(width int, endian string, c uint64) []byte {
	switch width {
	case layout.Width8:
		return stored(endian, uint8(c))
	case layout.Width16:
		return stored(endian, uint16(c))
	case layout.Width32:
		return stored(endian, uint32(c))
	default:
		return stored(endian, c)
	}
}

func stored[T bitfield.Container](endian string, c T) []byte {
	if endian == "be" || (endian == "host" && cpu.IsBigEndian) {
		return bitfield.ToBE(c).Bytes()
	}
	return bitfield.ToLE(c).Bytes()
}

func loadStored(width int, endian string, b []byte) uint64 {
	switch width {
	case layout.Width8:
		return uint64(load[uint8](endian, b))
	case layout.Width16:
		return uint64(load[uint16](endian, b))
	case layout.Width32:
		return uint64(load[uint32](endian, b))
	default:
		return load[uint64](endian, b)
	}
}

func load[T bitfield.Container](endian string, b []byte) T {
	if endian == "be" || (endian == "host" && cpu.IsBigEndian) {
		return bitfield.BEFromBytes[T](b).Host()
	}
	return bitfield.LEFromBytes[T](b).Host()
}

func splitCSV(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func fail(format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(1)
}
