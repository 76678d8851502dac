package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// NoIndex marks a face corner index that could not be read.
const NoIndex = -1

// OBJCornerLayout selects how a face corner token ("1/2/3") is split.
type OBJCornerLayout int

const (
	// OBJLayoutStandard splits corners as position/texcoord/normal.
	// Empty slots ("1//3") and missing slots ("1") yield NoIndex.
	OBJLayoutStandard OBJCornerLayout = iota

	// OBJLayoutLegacy reproduces the first/second/third slash extraction of
	// the original viewer: the normal is read after the second slash and the
	// texcoord after a third slash that normally does not exist, in which case
	// the whole token is read and the texcoord index equals the position index.
	OBJLayoutLegacy
)

// String returns the config name of the layout.
func (l OBJCornerLayout) String() string {
	switch l {
	case OBJLayoutStandard:
		return "standard"
	case OBJLayoutLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// ParseOBJCornerLayout converts a config name into a layout.
func ParseOBJCornerLayout(name string) (OBJCornerLayout, error) {
	switch strings.ToLower(name) {
	case "", "standard":
		return OBJLayoutStandard, nil
	case "legacy":
		return OBJLayoutLegacy, nil
	default:
		return OBJLayoutStandard, fmt.Errorf("unknown corner layout %q", name)
	}
}

// OBJOptions controls OBJ parsing.
type OBJOptions struct {
	Layout OBJCornerLayout
}

// OBJFace is a triangle. Each array holds one 0-based index per corner.
type OBJFace struct {
	Positions [3]int
	TexCoords [3]int
	Normals   [3]int
}

// OBJ holds the raw containers read from a mesh text file, in arrival order.
type OBJ struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Faces     []OBJFace

	// Truncated is set when a non-numeric value stopped the scan early.
	Truncated bool
}

// ParseOBJ scans whitespace-delimited tokens from r.
//
// Records are recognised by their leading tag (v, vn, vt, f); every other
// token is skipped. A value that does not parse as a number ends the scan the
// way a failed stream extraction does: the current record is kept with zeroes
// for the unread components and Truncated is set. Only read errors are
// returned.
func ParseOBJ(r io.Reader, opts OBJOptions) (*OBJ, error) {
	p := &objParser{
		scanner: bufio.NewScanner(r),
		opts:    opts,
		obj:     &OBJ{},
	}
	p.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	p.scanner.Split(bufio.ScanWords)

	if err := p.run(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}
	return p.obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string, opts OBJOptions) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, opts)
}

type objParser struct {
	scanner *bufio.Scanner
	opts    OBJOptions
	obj     *OBJ

	// pending holds text left after a numeric prefix; it is the next token.
	pending string
}

// next advances to the next token.
func (p *objParser) next() (string, bool) {
	if p.pending != "" {
		tok := p.pending
		p.pending = ""
		return tok, true
	}
	if !p.scanner.Scan() {
		return "", false
	}
	return p.scanner.Text(), true
}

func (p *objParser) run() error {
	for {
		tok, more := p.next()
		if !more {
			break
		}
		var ok bool
		switch tok {
		case "v":
			var v mgl32.Vec3
			ok = p.floats(v[:])
			p.obj.Positions = append(p.obj.Positions, v)
		case "vn":
			var n mgl32.Vec3
			ok = p.floats(n[:])
			p.obj.Normals = append(p.obj.Normals, n)
		case "vt":
			var t mgl32.Vec2
			ok = p.floats(t[:])
			p.obj.TexCoords = append(p.obj.TexCoords, t)
		case "f":
			ok = p.face()
		default:
			ok = true
		}
		if !ok {
			break
		}
	}
	return p.scanner.Err()
}

// floats fills dst from the next tokens. It reports false once the input
// ends or a token does not start with a number; the rest of dst stays zero.
// Text after a numeric prefix ("3#note") is read as the following token.
func (p *objParser) floats(dst []float32) bool {
	for i := range dst {
		tok, more := p.next()
		if !more {
			return false
		}
		n := floatPrefix(tok)
		f, err := strconv.ParseFloat(tok[:n], 32)
		if n == 0 || err != nil {
			p.obj.Truncated = true
			return false
		}
		dst[i] = float32(f)
		p.pending = tok[n:]
	}
	return true
}

// floatPrefix returns the length of the longest decimal float at the start
// of s: optional sign, digits with an optional fraction, optional exponent.
func floatPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// face reads three corner tokens. A face cut short by the end of input is dropped.
func (p *objParser) face() bool {
	var face OBJFace
	for i := 0; i < 3; i++ {
		tok, more := p.next()
		if !more {
			return false
		}
		face.Positions[i], face.TexCoords[i], face.Normals[i] = ParseOBJCorner(tok, p.opts.Layout)
	}
	p.obj.Faces = append(p.obj.Faces, face)
	return true
}

// ParseOBJCorner splits one face corner token into 0-based position,
// texcoord and normal indices.
func ParseOBJCorner(token string, layout OBJCornerLayout) (pos, tex, norm int) {
	if layout == OBJLayoutLegacy {
		return parseLegacyCorner(token)
	}

	parts := strings.SplitN(token, "/", 3)
	pos, tex, norm = NoIndex, NoIndex, NoIndex
	pos = objIndex(parts[0])
	if len(parts) > 1 {
		tex = objIndex(parts[1])
	}
	if len(parts) > 2 {
		norm = objIndex(parts[2])
	}
	return pos, tex, norm
}

func parseLegacyCorner(token string) (pos, tex, norm int) {
	first := strings.IndexByte(token, '/')
	second := indexFrom(token, '/', first+1)
	third := indexFrom(token, '/', second+1)

	posText := token
	if first >= 0 {
		posText = token[:first]
	}
	// A missing slash reads from the start of the token.
	return leadingIndex(posText), leadingIndex(token[third+1:]), leadingIndex(token[second+1:])
}

// indexFrom finds c in s starting at from; -1 when absent.
func indexFrom(s string, c byte, from int) int {
	if from < 0 || from > len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

func objIndex(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return NoIndex
	}
	return n - 1
}

// leadingIndex reads the integer prefix of s, ignoring trailing text.
func leadingIndex(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == digits {
		return NoIndex
	}
	return objIndex(s[:end])
}
