package usecase

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}

type fixedUUID string

func (f fixedUUID) NewUUID() string { return string(f) }

type fixedRandom []int

// Intn returns the queued values in order and then repeats the last one.
func (f *fixedRandom) Intn(int) (int, error) {
	v := (*f)[0]
	if len(*f) > 1 {
		*f = (*f)[1:]
	}
	return v, nil
}
