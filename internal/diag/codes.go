package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical. Scanning is total, the range is reserved.
	LexInfo Code = 1000

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynFrontMatterDelimiter Code = 2002
	SynFrontMatterEntry     Code = 2003
	SynUnterminatedEmphasis Code = 2004
	SynMalformedLink        Code = 2005
	SynUnterminatedFence    Code = 2006
	SynUnterminatedCode     Code = 2007
	SynTableRowMismatch     Code = 2008

	// IO
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002

	// Project
	ProjInvalidConfig Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexInfo:                 "Lexical information",
	SynInfo:                 "Syntax information",
	SynUnexpectedToken:      "Unexpected token",
	SynFrontMatterDelimiter: "Invalid front matter delimiter",
	SynFrontMatterEntry:     "Invalid front matter entry",
	SynUnterminatedEmphasis: "Unterminated emphasis",
	SynMalformedLink:        "Malformed link target",
	SynUnterminatedFence:    "Unterminated code fence",
	SynUnterminatedCode:     "Unterminated code span",
	SynTableRowMismatch:     "Malformed table row",
	IOLoadFileError:         "I/O load file error",
	IOWriteError:            "I/O write error",
	ProjInvalidConfig:       "Invalid project configuration",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
