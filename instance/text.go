package instance

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"q.log/tableau-simplex/model"
)

// ReadText reads a program in the plain text layout
//
//	R V
//	c_1 ... c_V
//	a_11 ... a_1V b_1
//	...
//	a_R1 ... a_RV b_R
//
// where R is the number of restrictions and V the number of variables.
// Tokens may be separated by any whitespace.
func ReadText(in io.Reader) (*model.Model, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	next := func(what string) (float64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, errors.Wrapf(err, "instance: reading %s", what)
			}
			return 0, errors.Errorf("instance: unexpected end of input reading %s", what)
		}
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "instance: parsing %s", what)
		}
		return v, nil
	}
	count := func(what string) (int, error) {
		v, err := next(what)
		if err != nil {
			return 0, err
		}
		if v != float64(int(v)) || v <= 0 {
			return 0, errors.Errorf("instance: %s must be a positive integer, got %v", what, v)
		}
		return int(v), nil
	}

	numRows, err := count("restriction count")
	if err != nil {
		return nil, err
	}
	numCols, err := count("variable count")
	if err != nil {
		return nil, err
	}

	m, err := model.NewModel(numRows, numCols)
	if err != nil {
		return nil, err
	}

	cVec := make([]float64, numCols)
	for j := range cVec {
		if cVec[j], err = next("objective"); err != nil {
			return nil, err
		}
	}
	if err := m.SetC(cVec); err != nil {
		return nil, err
	}

	aVec := make([]float64, 0, numRows*numCols)
	bVec := make([]float64, numRows)
	for i := range numRows {
		for range numCols {
			a, err := next("restriction " + strconv.Itoa(i+1))
			if err != nil {
				return nil, err
			}
			aVec = append(aVec, a)
		}
		if bVec[i], err = next("rhs " + strconv.Itoa(i+1)); err != nil {
			return nil, err
		}
	}
	if err := m.SetA(aVec); err != nil {
		return nil, err
	}
	if err := m.SetB(bVec); err != nil {
		return nil, err
	}

	return m, nil
}
