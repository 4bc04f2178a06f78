package hospital

// DataInput is the interactive capability used by AddNewPatient.
type DataInput interface {
	// AskForData reports whether the user confirmed with y or Y.
	AskForData() bool
	ReadName() (string, error)
	// InputData reads a single medical record and appends it to p.
	InputData(p *Patient) error
}
