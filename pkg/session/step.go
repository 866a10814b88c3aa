// Package session drives a FileSystem from scripted steps or an
// interactive menu, reporting results through a logger and a formatter.
package session

import "fmt"

// Op is a scripted operation.
type Op int

const (
	OpAllocate Op = iota
	OpDelete
	OpDirectory
	OpTable
	OpStats
	OpReset
	OpCheck
	OpSection
)

var opNames = map[Op]string{
	OpAllocate:  "allocate",
	OpDelete:    "delete",
	OpDirectory: "directory",
	OpTable:     "table",
	OpStats:     "stats",
	OpReset:     "reset",
	OpCheck:     "check",
	OpSection:   "section",
}

// String returns the script name of the op.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOp parses a script op name.
func ParseOp(s string) (Op, error) {
	for op, name := range opNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown op %q", s)
}

// Step is one operation. Name is the file name for allocate and delete and
// the heading for section; Size is used by allocate only.
type Step struct {
	Op   Op
	Name string
	Size int
}

// DemoScript returns the classic four-phase walkthrough: create three
// files, delete the middle one, fill the hole with a new file, clean up.
// The directory and table are shown after each phase.
func DemoScript() []Step {
	return joinPhases(demoPhases())
}

// DemoFill returns the first three demo phases, leaving the filesystem
// fragmented and refilled rather than empty.
func DemoFill() []Step {
	return joinPhases(demoPhases()[:3])
}

func demoPhases() [][]Step {
	return [][]Step{
		{
			{Op: OpSection, Name: "Step 1: creating initial files"},
			{Op: OpAllocate, Name: "DOC_A.TXT", Size: 2500},
			{Op: OpAllocate, Name: "IMG_B.JPG", Size: 1500},
			{Op: OpAllocate, Name: "PROJ_C.ZIP", Size: 3500},
		},
		{
			{Op: OpSection, Name: "Step 2: deleting the middle file"},
			{Op: OpDelete, Name: "IMG_B.JPG"},
		},
		{
			{Op: OpSection, Name: "Step 3: creating a new file (D) that fills the gap"},
			{Op: OpAllocate, Name: "DATA_D.LOG", Size: 2800},
		},
		{
			{Op: OpSection, Name: "Step 4: final cleanup"},
			{Op: OpDelete, Name: "DOC_A.TXT"},
			{Op: OpDelete, Name: "PROJ_C.ZIP"},
			{Op: OpDelete, Name: "DATA_D.LOG"},
		},
	}
}

func joinPhases(phases [][]Step) []Step {
	var steps []Step
	for _, phase := range phases {
		steps = append(steps, phase...)
		steps = append(steps, Step{Op: OpDirectory}, Step{Op: OpTable})
	}
	return steps
}
