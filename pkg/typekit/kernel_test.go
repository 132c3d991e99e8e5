package typekit_test

//go:generate mockgen -destination kernel_mocks_test.go -source kernel.go -package typekit_test

import (
	"math"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/ryanve/curious/pkg/typekit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type window struct {
	Document map[string]any
	Length   int `json:"length"`
}

func TestNew(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		ctrl = testcase.Let(s, func(t *testcase.T) *gomock.Controller {
			return gomock.NewController(t)
		})
		host = testcase.Let(s, func(t *testcase.T) *MockHost {
			return NewMockHost(ctrl.Get(t))
		})
		global     = testcase.LetValue[any](s, nil)
		native     = testcase.Let(s, func(t *testcase.T) typekit.Predicate { return nil })
		hostTagger = testcase.Let(s, func(t *testcase.T) func(v any) (string, bool) {
			return func(any) (string, bool) { return "", false }
		})
	)
	s.Before(func(t *testcase.T) {
		host.Get(t).EXPECT().Global().Return(global.Get(t)).AnyTimes()
		host.Get(t).EXPECT().NativeIsArray().Return(native.Get(t)).AnyTimes()
		host.Get(t).EXPECT().Tag(gomock.Any()).DoAndReturn(hostTagger.Get(t)).AnyTimes()
	})
	subject := func(t *testcase.T) *typekit.Kernel {
		return typekit.New(typekit.WithHost(host.Get(t)))
	}

	s.When("the host has no global and no native array test", func(s *testcase.Spec) {
		s.Then("the fixed predicates fall back to class tags", func(t *testcase.T) {
			k := subject(t)
			assert.Must(t).True(k.IsArray([]int{}))
			assert.Must(t).True(k.IsArray([2]string{}))
			assert.Must(t).False(k.IsArray(map[string]any{}))
			assert.Must(t).True(k.IsObject(map[string]any{}))
			assert.Must(t).True(k.IsObject(struct{}{}))
			assert.Must(t).False(k.IsObject([]any{}))
		})
	})

	s.When("the host provides a native array test", func(s *testcase.Spec) {
		native.Let(s, func(t *testcase.T) typekit.Predicate {
			return func(v any) bool { _, ok := v.([]string); return ok }
		})

		s.Then("IsArray delegates to it", func(t *testcase.T) {
			k := subject(t)
			assert.Must(t).True(k.IsArray([]string{"a"}))
			assert.Must(t).False(k.IsArray([]int{1}))
		})
	})

	s.When("the host has a global tagged as Object", func(s *testcase.Spec) {
		global.Let(s, func(t *testcase.T) any {
			return &window{Document: map[string]any{}}
		})

		s.Then("the global is not a plain object", func(t *testcase.T) {
			k := subject(t)
			assert.Must(t).False(k.IsObject(global.Get(t)))
			assert.Must(t).True(k.IsObject(&window{}))
			assert.Must(t).True(k.Is(global.Get(t), "Object"))
		})

		s.Then("the global is never empty, even with a zero length", func(t *testcase.T) {
			assert.Must(t).False(subject(t).IsEmpty(global.Get(t)))
			assert.Must(t).True(subject(t).IsEmpty(&window{}))
		})

		s.Then("the global is not a collection", func(t *testcase.T) {
			_, ok := subject(t).Count(global.Get(t))
			assert.Must(t).False(ok)
			assert.Must(t).False(subject(t).IsIndexed(global.Get(t)))
		})
	})

	s.When("the host tags values on its own", func(s *testcase.Spec) {
		hostTagger.Let(s, func(t *testcase.T) func(v any) (string, bool) {
			return func(v any) (string, bool) {
				if _, ok := v.(time.Duration); ok {
					return "Duration", true
				}
				if _, ok := v.(typekit.Arguments); ok {
					return "Object", true
				}
				return "", false
			}
		})

		s.Then("Is uses the host's tag", func(t *testcase.T) {
			k := subject(t)
			assert.Must(t).True(k.Is(time.Second, "Duration"))
			assert.Must(t).True(k.Is(time.Second, "number"))
			assert.Must(t).False(k.Is(time.Second, "Number"))
		})

		s.Then("IsArguments falls back to the own callee property", func(t *testcase.T) {
			k := subject(t)
			assert.Must(t).True(k.IsArguments(typekit.Arguments{Callee: "fn"}))
			assert.Must(t).True(k.IsArguments(map[string]any{"callee": 1}))
			assert.Must(t).False(k.IsArguments(map[string]any{"caller": 1}))
			assert.Must(t).False(k.IsArguments(nil))
		})
	})

	s.Test("the kernel is safe for concurrent use", func(t *testcase.T) {
		k := subject(t)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = k.IsArray([]int{})
				_ = k.Equal(map[string]any{"a": 1}, map[string]any{"a": 1})
			}()
		}
		wg.Wait()
	})
}

func TestNew_logging(t *testing.T) {
	l, out := logging.Stub(t)
	typekit.New(typekit.WithLogger(l))
	assert.Contains(t, out.String(), "typekit: array test uses the Array class tag")
	assert.Contains(t, out.String(), "typekit: kernel ready")
	assert.NotContains(t, out.String(), "typekit: arguments test falls back")
}

func TestWithHost_nil(t *testing.T) {
	k := typekit.New(typekit.WithHost(nil))
	assert.True(t, k.IsArray([]any{}))
}

func TestDefault(t *testing.T) {
	assert.True(t, typekit.Default() == typekit.Default())
}

func TestKernel_fixedPredicates(t *testing.T) {
	k := typekit.New()
	var n = 42

	type Case struct {
		Predicate func(any) bool
		Value     any
		Expected  bool
	}
	for name, c := range map[string]Case{
		"IsArray slice":                   {k.IsArray, []int{1}, true},
		"IsArray boxed string":            {k.IsArray, new(string), false},
		"IsArray null slice":              {k.IsArray, []int(nil), false},
		"IsObject map":                    {k.IsObject, map[int]int{}, true},
		"IsObject date":                   {k.IsObject, time.Time{}, false},
		"IsObject null":                   {k.IsObject, typekit.Null, false},
		"IsArguments":                     {k.IsArguments, typekit.Arguments{}, true},
		"IsArguments pointer":             {k.IsArguments, &typekit.Arguments{}, true},
		"IsArguments slice":               {k.IsArguments, []any{}, false},
		"IsFunction":                      {k.IsFunction, func() {}, true},
		"IsFunction null func":            {k.IsFunction, (func())(nil), false},
		"IsBoolean":                       {k.IsBoolean, false, true},
		"IsNumber":                        {k.IsNumber, uint8(1), true},
		"IsNumber boxed":                  {k.IsNumber, &n, false},
		"IsString":                        {k.IsString, "", true},
		"IsObjectKind null":               {k.IsObjectKind, typekit.Null, true},
		"IsObjectKind func":               {k.IsObjectKind, func() {}, false},
		"IsNaN NaN":                       {k.IsNaN, math.NaN(), true},
		"IsNaN float32 NaN":               {k.IsNaN, float32(math.NaN()), true},
		"IsNaN string":                    {k.IsNaN, "abc", false},
		"IsNaN undefined":                 {k.IsNaN, nil, false},
		"IsUndefined nil":                 {k.IsUndefined, nil, true},
		"IsUndefined null":                {k.IsUndefined, typekit.Null, false},
		"IsDefined null":                  {k.IsDefined, typekit.Null, true},
		"IsDefined nil":                   {k.IsDefined, nil, false},
		"IsDefined zero":                  {k.IsDefined, 0, true},
		"IsRegExp pointer":                {k.IsRegExp, regexp.MustCompile("a"), true},
		"IsRegExp string":                 {k.IsRegExp, "/a/", false},
		"IsElement element":               {k.IsElement, element{}, true},
		"IsElement text node":             {k.IsElement, map[string]any{"nodeType": 3}, false},
		"IsElement node type property":    {k.IsElement, map[string]any{"nodeType": 1}, true},
		"IsElement without node type":     {k.IsElement, map[string]any{}, false},
		"IsElement with string node type": {k.IsElement, map[string]any{"nodeType": "1"}, false},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.Expected, c.Predicate(c.Value))
		})
	}
}

func TestPackageLevelFunctions_delegateToDefault(t *testing.T) {
	values := []any{nil, typekit.Null, 0, -1.5, math.NaN(), "", "x", true, []int{}, map[string]int{"a": 1}, struct{}{}, func() {}, regexp.MustCompile("x"), typekit.Arguments{}, element{}}
	k := typekit.Default()
	for _, v := range values {
		assert.Equal(t, k.IsArray(v), typekit.IsArray(v))
		assert.Equal(t, k.IsObject(v), typekit.IsObject(v))
		assert.Equal(t, k.IsArguments(v), typekit.IsArguments(v))
		assert.Equal(t, k.IsFunction(v), typekit.IsFunction(v))
		assert.Equal(t, k.IsBoolean(v), typekit.IsBoolean(v))
		assert.Equal(t, k.IsNumber(v), typekit.IsNumber(v))
		assert.Equal(t, k.IsString(v), typekit.IsString(v))
		assert.Equal(t, k.IsObjectKind(v), typekit.IsObjectKind(v))
		assert.Equal(t, k.IsNaN(v), typekit.IsNaN(v))
		assert.Equal(t, k.IsUndefined(v), typekit.IsUndefined(v))
		assert.Equal(t, k.IsDefined(v), typekit.IsDefined(v))
		assert.Equal(t, k.IsRegExp(v), typekit.IsRegExp(v))
		assert.Equal(t, k.IsNode(v), typekit.IsNode(v))
		assert.Equal(t, k.IsElement(v), typekit.IsElement(v))
		assert.Equal(t, k.IsEmpty(v), typekit.IsEmpty(v))
		assert.Equal(t, k.IsIndexed(v), typekit.IsIndexed(v))
		assert.Equal(t, k.Equal(v, v), typekit.Equal(v, v))
	}
}
