package bigmath

import (
	"math/big"
)

type bigIntMath struct{}

func (bigIntMath) parse(left, right string) (l, r *big.Int, err error) {
	ls, rs, err := operands(left, right)
	if err != nil {
		return nil, nil, err
	}

	l, ok := new(big.Int).SetString(ls, 10)
	if !ok {
		return nil, nil, Error.New("invalid integer [%s]", left)
	}

	r, ok = new(big.Int).SetString(rs, 10)
	if !ok {
		return nil, nil, Error.New("invalid integer [%s]", right)
	}

	return l, r, nil
}

func (m bigIntMath) Add(left, right string) (string, error) {
	l, r, err := m.parse(left, right)
	if err != nil {
		return "", err
	}

	return l.Add(l, r).String(), nil
}

func (m bigIntMath) Subtract(left, right string) (string, error) {
	l, r, err := m.parse(left, right)
	if err != nil {
		return "", err
	}

	return l.Sub(l, r).String(), nil
}
