package autostruct

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryrobn/robn/errs"
)

func TestRegisterFieldEncodeDecodeRoundtrip(t *testing.T) {
	s := New()
	var name string
	var age int32
	require.NoError(t, RegisterField(s, "name", &name))
	require.NoError(t, RegisterField(s, "age", &age))

	name, age = "ada", 36
	blob, err := s.Encode()
	require.NoError(t, err)

	s2 := New()
	var gotName string
	var gotAge int32
	require.NoError(t, RegisterField(s2, "name", &gotName))
	require.NoError(t, RegisterField(s2, "age", &gotAge))
	require.NoError(t, s2.Decode(blob))
	require.Equal(t, "ada", gotName)
	require.Equal(t, int32(36), gotAge)
}

func TestRegisterFieldDuplicateNameFails(t *testing.T) {
	s := New()
	var a, b int32
	require.NoError(t, RegisterField(s, "x", &a))
	err := RegisterField(s, "x", &b)
	require.ErrorIs(t, err, errs.ErrInvalidConfiguration)
}

func TestDependsOnTopoOrder(t *testing.T) {
	// Field order in the emitted bytes doesn't directly observe through a
	// Map (keys are ascending-sorted on encode), so assert the order by
	// calling topoOrder directly: it must place "b" after "a" and "c" after both.
	s := New()
	var a, b, c int32
	require.NoError(t, RegisterField(s, "c", &c, DependsOn("a", "b")))
	require.NoError(t, RegisterField(s, "b", &b, DependsOn("a")))
	require.NoError(t, RegisterField(s, "a", &a))

	order, err := s.topoOrder()
	require.NoError(t, err)

	pos := make(map[string]int, len(order))
	for rank, idx := range order {
		pos[s.fields[idx].name] = rank
	}
	require.Less(t, pos["a"], pos["b"])
	require.Less(t, pos["a"], pos["c"])
	require.Less(t, pos["b"], pos["c"])
}

func TestDependsOnCycleFails(t *testing.T) {
	s := New()
	var a, b int32
	require.NoError(t, RegisterField(s, "a", &a, DependsOn("b")))
	require.NoError(t, RegisterField(s, "b", &b, DependsOn("a")))

	_, err := s.Encode()
	require.ErrorIs(t, err, errs.ErrInvalidConfiguration)
}

func TestDependsOnUnknownFieldFails(t *testing.T) {
	s := New()
	var a int32
	require.NoError(t, RegisterField(s, "a", &a, DependsOn("ghost")))

	_, err := s.Encode()
	require.ErrorIs(t, err, errs.ErrInvalidConfiguration)
}

func TestRequiredIfAbsentAlwaysRequired(t *testing.T) {
	s := New()
	var a int32
	require.NoError(t, RegisterField(s, "a", &a))

	// Encode produces a map containing "a"; decoding into a Struct missing
	// that registration is a different scenario (unknown field, ignored),
	// so instead exercise the required-but-absent path directly: decode a
	// hand-built empty map into a Struct expecting "a" to be required.
	empty := New()
	var gotA int32
	require.NoError(t, RegisterField(empty, "a", &gotA))

	blob := encodeEmptyMap(t)
	err := empty.Decode(blob)
	require.ErrorIs(t, err, errs.ErrMissingRequiredField)
}

func TestRequiredIfPredicateFalseSkipsField(t *testing.T) {
	s := New()
	var flag bool
	var extra int32
	require.NoError(t, RegisterField(s, "flag", &flag))
	require.NoError(t, RegisterField(s, "extra", &extra, RequiredIf(func() bool { return flag })))

	flag, extra = false, 0
	blob, err := s.Encode()
	require.NoError(t, err)

	s2 := New()
	var gotFlag bool
	var gotExtra int32
	require.NoError(t, RegisterField(s2, "flag", &gotFlag))
	require.NoError(t, RegisterField(s2, "extra", &gotExtra, RequiredIf(func() bool { return gotFlag })))
	require.NoError(t, s2.Decode(blob))
	require.False(t, gotFlag)
	require.Equal(t, int32(0), gotExtra)
}

func TestUnknownFieldsInDecodedMapIgnored(t *testing.T) {
	s := New()
	var a, b int32
	require.NoError(t, RegisterField(s, "a", &a))
	require.NoError(t, RegisterField(s, "b", &b))
	a, b = 1, 2
	blob, err := s.Encode()
	require.NoError(t, err)

	onlyA := New()
	var gotA int32
	require.NoError(t, RegisterField(onlyA, "a", &gotA))
	require.NoError(t, onlyA.Decode(blob))
	require.Equal(t, int32(1), gotA)
}

// encodeEmptyMap builds the ROBN encoding of an empty Map, the minimal
// input for exercising a required-field-absent decode failure.
func encodeEmptyMap(t *testing.T) []byte {
	t.Helper()
	s := New()
	blob, err := s.Encode()
	require.NoError(t, err)

	return blob
}
