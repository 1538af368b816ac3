// services/command/command.go
//
// Line-oriented console grammar, first match wins:
//
//	MUTE            mute everything
//	FULL            both groups to full volume
//	SATFULL         satellites to full volume
//	SUBFULL         subwoofer to full volume
//	SAVE            persist the current state
//	SATL n          satellites to preset n (decimal 0-9)
//	SUBL n          subwoofer to preset n
//	ALLL n          both groups to preset n
//	SAT xx          satellites to raw hex byte xx
//	SUB xx          subwoofer to raw hex byte xx
//	ALL xx          both groups to raw hex byte xx
//
// Anything else prints the usage text. Input is trimmed and upper-cased
// before matching, so the grammar is case-insensitive.
package command

import (
	"strconv"
	"strings"

	"github.com/google/shlex"

	"audiodock-go/services/settings"
	"audiodock-go/services/volume"
	"audiodock-go/types"
	"audiodock-go/x/conv"
	"audiodock-go/x/mathx"
)

// Writer is where responses go; hal.LinePort satisfies it.
type Writer interface {
	WriteString(s string)
}

type Interpreter struct {
	vol     *volume.Controller
	store   *settings.Store
	presets types.PresetTable
	out     Writer
}

func New(vol *volume.Controller, store *settings.Store, presets types.PresetTable, out Writer) *Interpreter {
	return &Interpreter{vol: vol, store: store, presets: presets, out: out}
}

// Execute runs one console line and reports whether it changed volume
// state. Persistence of that change is the caller's job; only SAVE writes
// the store directly.
func (in *Interpreter) Execute(line string) (changed bool) {
	s := strings.ToUpper(strings.TrimSpace(line))
	if s == "" {
		return false
	}
	tokens, err := shlex.Split(s)
	if err != nil || len(tokens) == 0 {
		in.help()
		return false
	}

	if len(tokens) == 1 {
		switch tokens[0] {
		case "MUTE":
			in.vol.MuteAll()
			in.status()
			return true
		case "FULL":
			in.vol.SetAll(types.CodeFull, types.CodeFull)
			in.status()
			return true
		case "SATFULL":
			in.vol.SetGroup(types.GroupSatellites, types.CodeFull)
			in.status()
			return true
		case "SUBFULL":
			in.vol.SetGroup(types.GroupSubwoofer, types.CodeFull)
			in.status()
			return true
		case "SAVE":
			if err := in.store.Save(in.vol.Sat(), in.vol.Sub()); err != nil {
				in.out.WriteString("save failed: " + err.Error() + "\r\n")
			} else {
				in.out.WriteString("saved\r\n")
			}
			return false
		}
	}

	if len(tokens) == 2 {
		switch tokens[0] {
		case "SATL", "SUBL", "ALLL":
			// Out-of-range or non-numeric indexes fall through to help.
			if idx, err := strconv.Atoi(tokens[1]); err == nil && mathx.Between(idx, 0, len(in.presets)-1) {
				in.applyGroups(tokens[0][:3], in.presets[idx])
				return true
			}
		case "SAT", "SUB", "ALL":
			// Raw path: any byte is accepted verbatim, mute codes included.
			if v, err := strconv.ParseUint(tokens[1], 16, 8); err == nil {
				in.applyGroups(tokens[0], types.Code(v))
				return true
			}
		}
	}

	in.help()
	return false
}

func (in *Interpreter) applyGroups(which string, code types.Code) {
	switch which {
	case "SAT":
		in.vol.SetGroup(types.GroupSatellites, code)
	case "SUB":
		in.vol.SetGroup(types.GroupSubwoofer, code)
	case "ALL":
		in.vol.SetAll(code, code)
	}
	in.status()
}

func (in *Interpreter) status() {
	in.out.WriteString("SAT=" + conv.ByteHex(byte(in.vol.Sat())) +
		" SUB=" + conv.ByteHex(byte(in.vol.Sub())) + "\r\n")
}

func (in *Interpreter) help() {
	in.out.WriteString("commands: MUTE | FULL | SATFULL | SUBFULL | SAVE | " +
		"SATL n | SUBL n | ALLL n (n=0-9) | SAT xx | SUB xx | ALL xx (hex)\r\n")
}
