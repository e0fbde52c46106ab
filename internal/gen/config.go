package gen

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// MaxCapacity is the largest capacity a generated type may declare. The
// length discriminant is a single byte.
const MaxCapacity = 255

var (
	ErrNoTypes         = errors.New("no types configured")
	ErrInvalidName     = errors.New("type name must be an exported Go identifier")
	ErrDuplicateName   = errors.New("duplicate type name")
	ErrInvalidCapacity = errors.New("capacity must be between 1 and 255")
	ErrReservedFile    = errors.New("file name is reserved")
	ErrNameClash       = errors.New("generated identifier clashes")
)

// handWritten are the package's files that are not generated.
var handWritten = map[string]bool{
	"cbor.go": true, "doc.go": true, "errors.go": true, "schema.go": true, "text.go": true,
}

// packageIdents are the identifiers declared by the hand-written files.
var packageIdents = map[string]bool{
	"CapacityError": true, "Compare": true, "Equal": true, "ImportPath": true,
	"InvalidValueError": true, "MaxCapacity": true, "Schema": true, "Schemer": true, "Text": true,
	"ErrCapacityExceeded": true, "ErrInvalidEncoding": true, "ErrInvalidLength": true,
	"ErrNonCanonical": true, "ErrNotString": true, "ErrRawSize": true,
	"compareString": true, "compareText": true, "decMode": true, "decodeFailure": true,
	"encMode": true, "equalText": true, "expecting": true, "hashText": true,
	"invalidValue": true, "isCBORNull": true, "isJSONNull": true, "isYAMLNull": true,
	"marshalCBORText": true, "marshalJSONText": true, "quote": true, "scanText": true,
	"unmarshalCBORText": true, "unmarshalJSONText": true, "validBytes": true,
	"validText": true, "yamlFailure": true, "yamlText": true, "zeroBytes": true,
}

// knownOS and knownArch mirror the go/build lists that turn a _GOOS or
// _GOARCH file name suffix into a build constraint.
var (
	knownOS = map[string]bool{
		"aix": true, "android": true, "darwin": true, "dragonfly": true, "freebsd": true,
		"hurd": true, "illumos": true, "ios": true, "js": true, "linux": true, "nacl": true,
		"netbsd": true, "openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
		"windows": true, "zos": true,
	}
	knownArch = map[string]bool{
		"386": true, "amd64": true, "amd64p32": true, "arm": true, "armbe": true,
		"arm64": true, "arm64be": true, "loong64": true, "mips": true, "mipsle": true,
		"mips64": true, "mips64le": true, "mips64p32": true, "mips64p32le": true,
		"ppc": true, "ppc64": true, "ppc64le": true, "riscv": true, "riscv64": true,
		"s390": true, "s390x": true, "sparc": true, "sparc64": true, "wasm": true,
	}
)

var identRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// Type is one bounded string type to generate.
type Type struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

// Config lists the bounded string types to generate.
type Config struct {
	Types []Type `yaml:"types"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML config.
func ParseConfig(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks names and capacities, and that every type lands in its
// own buildable file without redeclaring an identifier.
func (c *Config) Validate() error {
	if len(c.Types) == 0 {
		return ErrNoTypes
	}
	seen := make(map[string]bool, len(c.Types))
	files := make(map[string]string, len(c.Types))
	idents := make(map[string]string)
	for _, t := range c.Types {
		if !identRe.MatchString(t.Name) {
			return fmt.Errorf("%q: %w", t.Name, ErrInvalidName)
		}
		if seen[t.Name] {
			return fmt.Errorf("%q: %w", t.Name, ErrDuplicateName)
		}
		seen[t.Name] = true
		if t.Capacity < 1 || t.Capacity > MaxCapacity {
			return fmt.Errorf("%s capacity %d: %w", t.Name, t.Capacity, ErrInvalidCapacity)
		}

		file := t.FileName()
		if reservedFile(file) {
			return fmt.Errorf("%s writes %s: %w", t.Name, file, ErrReservedFile)
		}
		if other, ok := files[file]; ok {
			return fmt.Errorf("%s and %s both write %s: %w", other, t.Name, file, ErrReservedFile)
		}
		files[file] = t.Name

		for _, id := range t.idents() {
			if packageIdents[id] {
				return fmt.Errorf("%s declares %s: %w", t.Name, id, ErrNameClash)
			}
			if other, ok := idents[id]; ok {
				return fmt.Errorf("%s and %s both declare %s: %w", other, t.Name, id, ErrNameClash)
			}
			idents[id] = t.Name
		}
	}
	return nil
}

// reservedFile reports whether the go tool would skip or treat specially a
// generated file of that name, or whether it is a hand-written file.
func reservedFile(file string) bool {
	if handWritten[file] {
		return true
	}
	parts := strings.Split(strings.TrimSuffix(file, ".go"), "_")
	n := len(parts)
	if n < 2 {
		return false
	}
	last := parts[n-1]
	if last == "test" || knownOS[last] || knownArch[last] {
		return true
	}
	return n >= 3 && knownOS[parts[n-2]] && knownArch[last]
}

// idents returns the package-level identifiers the template declares for t.
func (t Type) idents() []string {
	n, l := t.Name, t.lower()
	return []string{
		n, "Optional" + n, "Some" + n, "New" + n, "Parse" + n, "Must" + n,
		n + "FromBytes", n + "FromRaw", n + "Capacity", n + "RawSize",
		"Err" + n + "TooLong", l + "Len", l + "LenFrom", l + "Mark",
	}
}

// FileName returns the snake_case file name the type is written to,
// e.g. nano_string.go for NanoString.
func (t Type) FileName() string {
	var b strings.Builder
	runes := []rune(t.Name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	b.WriteString(".go")
	return b.String()
}

// lower returns the name with its first letter lower-cased.
func (t Type) lower() string {
	runes := []rune(t.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// markType is the Go type of the discriminant of the optional variant. It
// needs Capacity+2 states: absent plus every length.
func (t Type) markType() string {
	if t.Capacity+2 > 256 {
		return "uint16"
	}
	return "uint8"
}
