// Package slidekitcontract contains the behavior suite of the slidekit.Slider capability.
//
// Any sequence representation that supplies the Slider capability
// is expected to pass this suite.
package slidekitcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/slidekit"
)

// Slider returns the contract that verifies the sliding traversal behavior
// of a sequence representation.
//
// The "mk" function must return a slidekit.Slider whose sequence
// contains exactly the received elements, in the received order.
func Slider[T any](mk func(tb testing.TB, vs []T) slidekit.Slider[T], opts ...SliderOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	var (
		elements = testcase.Let(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		})
		subject = testcase.Let(s, func(t *testcase.T) slidekit.Slider[T] {
			return mk(t, elements.Get(t))
		})
	)

	s.Then("it produces every element of the sequence, in order", func(t *testcase.T) {
		itr := subject.Get(t).Slide()

		var got []T
		for itr.Next() {
			got = append(got, itr.Value())
		}
		assert.Equal(t, elements.Get(t), got)
	})

	s.Then("each produced item carries the suffix of all elements strictly after it", func(t *testcase.T) {
		var (
			itr = subject.Get(t).Slide()
			vs  = elements.Get(t)
		)
		for i := 0; itr.Next(); i++ {
			rest, ok := itr.Rest()
			if i == len(vs)-1 {
				assert.False(t, ok, "the last element was expected to have an absent suffix")
				assert.Nil(t, rest)
				continue
			}
			assert.True(t, ok)
			assert.NotEmpty(t, rest, "a present suffix must contain at least one element")
			assert.Equal(t, vs[i+1:], rest)
		}
	})

	s.Then("it reports the remaining count throughout the traversal", func(t *testcase.T) {
		itr := subject.Get(t).Slide()

		var produced int
		assert.Equal(t, len(elements.Get(t)), itr.Len())
		for itr.Next() {
			produced++
			assert.Equal(t, len(elements.Get(t))-produced, itr.Len())
		}
		assert.Equal(t, 0, itr.Len())
	})

	s.Then("exhaustion is terminal and idempotent", func(t *testcase.T) {
		itr := subject.Get(t).Slide()
		for itr.Next() {
		}

		t.Random.Repeat(2, 5, func() {
			assert.False(t, itr.Next())
			assert.Equal(t, 0, itr.Len())
		})
	})

	s.Then("each Slide call yields an independent traversal from the first element", func(t *testcase.T) {
		var (
			itr1 = subject.Get(t).Slide()
			itr2 = subject.Get(t).Slide()
		)
		for itr1.Next() {
			assert.True(t, itr2.Next())
			assert.Equal(t, itr1.Value(), itr2.Value())
		}
		assert.False(t, itr1.Next())
		assert.False(t, itr2.Next())
	})

	s.When("the sequence is empty", func(s *testcase.Spec) {
		elements.Let(s, func(t *testcase.T) []T {
			return []T{}
		})

		s.Then("the view begins exhausted and produces nothing", func(t *testcase.T) {
			itr := subject.Get(t).Slide()

			assert.Equal(t, 0, itr.Len())
			t.Random.Repeat(2, 5, func() {
				assert.False(t, itr.Next())
			})
		})
	})

	return s.AsSuite(fmt.Sprintf("Slider[%s]", reflectkit.TypeOf[T]().String()))
}

type SliderOption[T any] interface {
	option.Option[SliderConfig[T]]
}

type SliderConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ SliderOption[any] = SliderConfig[any]{}

func (c SliderConfig[T]) Configure(o *SliderConfig[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c SliderConfig[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}
