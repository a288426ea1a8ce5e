package utils

import (
	"github.com/go-faker/faker/v4"
	"github.com/go-faker/faker/v4/pkg/options"
)

// FakeStruct fills a value of type T with random data, for tests.
func FakeStruct[T any](opts ...options.OptionFunc) T {
	var out T
	if err := faker.FakeData(&out, opts...); err != nil {
		panic(err)
	}
	return out
}

func FakeStructs[T any](n int, opts ...options.OptionFunc) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = FakeStruct[T](opts...)
	}
	return out
}
