package instance

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"q.log/tableau-simplex/model"
)

// Reader reads a mps file to construct a model
type Reader struct {
	filename string
	log      logrus.FieldLogger
}

func NewReader(filename string, log logrus.FieldLogger) *Reader {
	return &Reader{
		filename: filename,
		log:      log.WithField("file", filename),
	}
}

// row is one restriction a'x <= rhs, or a'x >= rhs when geq is set.
type row struct {
	coefs []float64
	rhs   float64
	geq   bool
}

// ConstructModelFromFile returns a *Model in standard inequality form.
// Minimization is turned into maximization of -c. Greater-or-equal rows are
// negated, equality and ranged rows become two rows, and finite column
// bounds become rows of their own.
func (r *Reader) ConstructModelFromFile() (*model.Model, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "instance: read mps %s", r.filename)
	}

	numCols := lp.NumCols()
	if numCols == 0 {
		return nil, errors.Errorf("instance: %s has no columns", r.filename)
	}

	//populate obj function
	sense := 1.0
	if lp.ObjDir() == glpk.MIN {
		sense = -1
	}
	cVec := make([]float64, numCols)
	for c := range numCols {
		cVec[c] = sense * lp.ObjCoef(c+1)
	}

	//populate restrictions
	var rows []row
	for i := 1; i <= lp.NumRows(); i++ {
		coefs := make([]float64, numCols)
		idxs, vals := lp.MatRow(i)
		for k, v := range idxs {
			if v == 0 {
				continue
			}
			coefs[v-1] = vals[k]
		}
		rows = append(rows, boundRows(coefs, lp.RowLB(i), lp.RowUB(i))...)
	}

	for c := range numCols {
		lb, ub := lp.ColLB(c+1), lp.ColUB(c+1)
		if lb < 0 {
			r.log.WithFields(logrus.Fields{
				"column": c + 1,
				"lower":  lb,
			}).Warn("negative lower bound replaced by 0")
			lb = 0
		}
		if lb == 0 && ub == math.MaxFloat64 {
			continue
		}
		coefs := make([]float64, numCols)
		coefs[c] = 1
		if lb == 0 {
			lb = -math.MaxFloat64
		}
		rows = append(rows, boundRows(coefs, lb, ub)...)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("instance: %s has no restrictions", r.filename)
	}

	m, err := model.NewModel(len(rows), numCols)
	if err != nil {
		return nil, err
	}
	if err := m.SetC(cVec); err != nil {
		return nil, err
	}
	for i, rw := range rows {
		if err := m.SetRow(i, rw.coefs, rw.rhs); err != nil {
			return nil, err
		}
		if rw.geq {
			if err := m.MultiplyConstraint(i, -1); err != nil {
				return nil, err
			}
		}
	}

	r.log.WithFields(logrus.Fields{
		"variables":    m.NumCols,
		"restrictions": m.NumRows,
	}).Debug("mps model read")
	return m, nil
}

// boundRows splits lb <= a'x <= ub into one row per finite bound. Bounds at
// ±math.MaxFloat64 are absent.
func boundRows(coefs []float64, lb, ub float64) []row {
	var out []row
	if ub != math.MaxFloat64 {
		out = append(out, row{coefs: coefs, rhs: ub})
	}
	if lb != -math.MaxFloat64 {
		out = append(out, row{coefs: coefs, rhs: lb, geq: true})
	}
	return out
}
