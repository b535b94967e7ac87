package bigmath

import (
	"github.com/shopspring/decimal"
)

type decimalMath struct{}

func (decimalMath) parse(left, right string) (l, r decimal.Decimal, err error) {
	ls, rs, err := operands(left, right)
	if err != nil {
		return l, r, err
	}

	l, err = decimal.NewFromString(ls)
	if err != nil {
		return l, r, Error.Wrap(err)
	}

	r, err = decimal.NewFromString(rs)
	if err != nil {
		return l, r, Error.Wrap(err)
	}

	return l, r, nil
}

func (m decimalMath) Add(left, right string) (string, error) {
	l, r, err := m.parse(left, right)
	if err != nil {
		return "", err
	}

	return l.Add(r).String(), nil
}

func (m decimalMath) Subtract(left, right string) (string, error) {
	l, r, err := m.parse(left, right)
	if err != nil {
		return "", err
	}

	return l.Sub(r).String(), nil
}
