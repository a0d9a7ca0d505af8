package whitebox

import (
	"fmt"
	"io"

	"github.com/opd-ai/go-whitebox-aes/internal/gf2"
)

// instanceMagic identifies the serialized instance format.
var instanceMagic = [8]byte{'W', 'B', 'A', 'E', 'S', 'J', 'C', 'N'}

const instanceVersion = 1

const flagOutputEncodingPresent = 1 << 0

// Save writes inst to w in the stable binary layout: magic, version, flags,
// the input encoding, then Rounds rounds of TablesPerRound tables each. An
// output encoding is never written: this implementation always folds an
// enabled output encoding into round 10's tables rather than carrying it as
// a separate field, so there is nothing beyond the flag byte to persist for
// it.
func (inst *Instance) Save(w io.Writer) error {
	if _, err := w.Write(instanceMagic[:]); err != nil {
		return fmt.Errorf("whitebox: writing magic: %w: %w", err, ErrIO)
	}

	var flags byte
	if inst.OutputEncodingPresent {
		flags |= flagOutputEncodingPresent
	}
	if _, err := w.Write([]byte{instanceVersion, flags}); err != nil {
		return fmt.Errorf("whitebox: writing header: %w: %w", err, ErrIO)
	}

	if err := writeAffine(w, inst.FIn); err != nil {
		return fmt.Errorf("whitebox: writing input encoding: %w", err)
	}

	for r := 0; r < Rounds; r++ {
		for i := 0; i < TablesPerRound; i++ {
			if _, err := w.Write(inst.Table[r][i]); err != nil {
				return fmt.Errorf("whitebox: writing round %d table %d: %w: %w", r, i, err, ErrIO)
			}
		}
	}

	return nil
}

// LoadInstance reads an instance previously written by (*Instance).Save.
func LoadInstance(r io.Reader) (*Instance, error) {
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("whitebox: reading magic: %w: %w", err, ErrIO)
	}
	if magic != instanceMagic {
		return nil, fmt.Errorf("whitebox: unrecognized magic %x: %w", magic, ErrMalformedInstance)
	}

	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("whitebox: reading header: %w: %w", err, ErrIO)
	}
	if header[0] != instanceVersion {
		return nil, fmt.Errorf("whitebox: unsupported version %d: %w", header[0], ErrMalformedInstance)
	}
	flags := header[1]

	fin, err := readAffine(r)
	if err != nil {
		return nil, fmt.Errorf("whitebox: reading input encoding: %w", err)
	}

	inst := &Instance{
		FIn:                   fin,
		OutputEncodingPresent: flags&flagOutputEncodingPresent != 0,
	}

	for rnd := 0; rnd < Rounds; rnd++ {
		var round Round
		for i := 0; i < TablesPerRound; i++ {
			table := newRoundTable()
			if _, err := io.ReadFull(r, table); err != nil {
				return nil, fmt.Errorf("whitebox: reading round %d table %d: %w: %w", rnd, i, err, ErrIO)
			}
			round[i] = table
		}
		inst.Table[rnd] = round
	}

	return inst, nil
}

func writeAffine(w io.Writer, a gf2.Affine) error {
	n := a.Dim()
	for i := 0; i < n; i++ {
		if _, err := w.Write(a.L.Row(i)); err != nil {
			return fmt.Errorf("writing affine row %d: %w: %w", i, err, ErrIO)
		}
	}
	if _, err := w.Write(a.C); err != nil {
		return fmt.Errorf("writing affine constant: %w: %w", err, ErrIO)
	}
	return nil
}

func readAffine(r io.Reader) (gf2.Affine, error) {
	const n = WideStateLen * 8
	rowLen := n / 8
	rows := make([][]byte, n)
	for i := 0; i < n; i++ {
		row := make([]byte, rowLen)
		if _, err := io.ReadFull(r, row); err != nil {
			return gf2.Affine{}, fmt.Errorf("reading affine row %d: %w: %w", i, err, ErrIO)
		}
		rows[i] = row
	}
	c := make([]byte, rowLen)
	if _, err := io.ReadFull(r, c); err != nil {
		return gf2.Affine{}, fmt.Errorf("reading affine constant: %w: %w", err, ErrIO)
	}
	return gf2.NewAffine(gf2.NewMatrix(n, rows), c), nil
}
