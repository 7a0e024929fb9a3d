package parser

import "strings"

const (
	directiveOrg    = "ORG"
	directiveDefine = "DEFINE"
	directiveStart  = "START"
	directiveEnd    = "END"
)

// Result is everything the preprocessor hands to the encoder: the code
// region descriptor plus the symbol table and the pre-populated image.
type Result struct {
	CodeAddress uint32
	CodeLines   []SourceLine // label stripped, strictly between START and END
	Image       []uint32     // zero-initialised, constants laid down
	Symbols     *SymbolTable
}

// Preprocessor runs the two-pass algorithm described in the component
// design: a merged label/sizing pass, followed by a constant-layout and
// code-extraction pass.
type Preprocessor struct {
	Filename string
}

func NewPreprocessor(filename string) *Preprocessor {
	return &Preprocessor{Filename: filename}
}

// Process runs both passes over raw source text.
func (p *Preprocessor) Process(source string) (*Result, error) {
	lines := NormaliseLines(source)

	symbols, stripped, maxAddr, err := p.labelPass(lines)
	if err != nil {
		return nil, err
	}

	image := make([]uint32, maxAddr/4)

	codeAddress, codeLines, err := p.layoutPass(stripped, image)
	if err != nil {
		return nil, err
	}

	return &Result{
		CodeAddress: codeAddress,
		CodeLines:   codeLines,
		Image:       image,
		Symbols:     symbols,
	}, nil
}

// labelPass walks the source once, building the symbol table, stripping
// labels from each line, and tracking the highest address touched so the
// image can be sized.
func (p *Preprocessor) labelPass(lines []SourceLine) (*SymbolTable, []SourceLine, uint32, error) {
	symbols := NewSymbolTable()
	stripped := make([]SourceLine, 0, len(lines))

	var currentAddress uint32
	var maxAddress uint32
	orgSeen := false

	for _, line := range lines {
		pos := Position{Filename: p.Filename, Line: line.EditorLine}

		label, rest := splitLabel(line.Text)

		if label != "" {
			if err := symbols.Define(label, currentAddress, pos); err != nil {
				return nil, nil, 0, NewError(pos, ErrorLabel, err.Error())
			}
			if rest == "" {
				currentAddress += 4
				if currentAddress > maxAddress {
					maxAddress = currentAddress
				}
				continue
			}
		}

		stripped = append(stripped, SourceLine{Text: rest, EditorLine: line.EditorLine})

		directive := firstField(rest)
		switch directive {
		case directiveOrg:
			n, err := parseOrgArg(rest)
			if err != nil {
				return nil, nil, 0, NewError(pos, ErrorSource, err.Error())
			}
			currentAddress = n
			orgSeen = true
		case directiveDefine:
			if !orgSeen {
				return nil, nil, 0, NewError(pos, ErrorDirective, "DEFINE without an active ORG")
			}
			currentAddress += 4
		case directiveStart, directiveEnd:
			// bracket markers occupy no address
		default:
			currentAddress += 4
		}

		if currentAddress > maxAddress {
			maxAddress = currentAddress
		}
	}

	if !orgSeen {
		return nil, nil, 0, NewError(Position{Filename: p.Filename}, ErrorDirective, "missing ORG directive")
	}

	return symbols, stripped, maxAddress, nil
}

// layoutPass walks the label-stripped lines a second time, laying down
// DEFINE constants into image and locating the code region bounded by
// START/END.
func (p *Preprocessor) layoutPass(lines []SourceLine, image []uint32) (uint32, []SourceLine, error) {
	var cursor uint32
	var codeAddress uint32
	orgActive := false
	startSeen, endSeen := false, false
	inCode := false

	var codeLines []SourceLine

	for _, line := range lines {
		pos := Position{Filename: p.Filename, Line: line.EditorLine}
		directive := firstField(line.Text)

		switch directive {
		case directiveOrg:
			n, err := parseOrgArg(line.Text)
			if err != nil {
				return 0, nil, NewError(pos, ErrorSource, err.Error())
			}
			cursor = n
			orgActive = true

		case directiveDefine:
			v, err := parseDefineArg(line.Text)
			if err != nil {
				return 0, nil, NewError(pos, ErrorSource, err.Error())
			}
			index := cursor / 4
			if int(index) >= len(image) {
				return 0, nil, NewError(pos, ErrorAddress, "DEFINE address outside memory image")
			}
			image[index] = v
			cursor += 4

		case directiveStart:
			if !orgActive {
				return 0, nil, NewError(pos, ErrorDirective, "START without an active ORG")
			}
			codeAddress = cursor
			startSeen = true
			inCode = true

		case directiveEnd:
			endSeen = true
			inCode = false

		default:
			if inCode {
				codeLines = append(codeLines, line)
			}
		}
	}

	if !startSeen || !endSeen {
		return 0, nil, NewError(Position{Filename: p.Filename}, ErrorDirective, "missing START and/or END directive")
	}

	return codeAddress, codeLines, nil
}

// splitLabel splits a line on the first ':' into (label, rest). If there
// is no ':' the whole line is returned as rest with an empty label.
func splitLabel(line string) (string, string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", strings.TrimSpace(line)
	}
	label := strings.TrimSpace(line[:idx])
	rest := strings.TrimSpace(line[idx+1:])
	return label, rest
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func parseOrgArg(line string) (uint32, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, errMissingArg(directiveOrg)
	}
	n, err := ParseNumber(fields[1])
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

func parseDefineArg(line string) (uint32, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, errMissingArg(directiveDefine)
	}
	n, err := ParseNumber(fields[1])
	if err != nil {
		return 0, err
	}
	return uint32(n), nil // two's-complement wrap via uint32 conversion
}

func errMissingArg(directive string) error {
	return &argError{directive}
}

type argError struct{ directive string }

func (e *argError) Error() string {
	return e.directive + " requires an argument"
}
