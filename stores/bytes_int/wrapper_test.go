package bytes_int

import "testing"
import "github.com/stretchr/testify/assert"

func TestSerialize(x *testing.T) {
	t := assert.New(x)
	for _, i := range []int32{0, 1, -1, 1 << 20, -(1 << 30)} {
		t.Equal(i, DeserializeInt32(SerializeInt32(i)))
	}
	b := []byte("abc")
	c := Identity(b)
	b[0] = 'z'
	t.Equal([]byte("abc"), c)
}

func TestBpTree(x *testing.T) {
	t := assert.New(x)
	bpt, err := AnonBpTree()
	t.Nil(err)
	defer bpt.Delete()

	t.Nil(bpt.Add([]byte("a b"), 1))
	t.Nil(bpt.Add([]byte("c"), 3))
	t.Nil(bpt.Add([]byte("a b"), 2))
	t.Equal(3, bpt.Size())

	has, err := bpt.Has([]byte("a b"))
	t.Nil(err)
	t.True(has)
	has, err = bpt.Has([]byte("a"))
	t.Nil(err)
	t.False(has)

	count, err := bpt.Count([]byte("a b"))
	t.Nil(err)
	t.Equal(2, count)

	sum := int32(0)
	t.Nil(bpt.DoFind([]byte("a b"), func(k []byte, v int32) error {
		t.Equal("a b", string(k))
		sum += v
		return nil
	}))
	t.Equal(int32(3), sum)

	t.Nil(bpt.Remove([]byte("a b"), func(v int32) bool { return v == 1 }))
	count, err = bpt.Count([]byte("a b"))
	t.Nil(err)
	t.Equal(1, count)

	seen := make(map[string]int32)
	t.Nil(Do(bpt.Iterate, func(k []byte, v int32) error {
		seen[string(k)] = v
		return nil
	}))
	t.Equal(map[string]int32{"a b": 2, "c": 3}, seen)

	keys := make([]string, 0, 2)
	t.Nil(DoKey(bpt.Keys, func(k []byte) error {
		keys = append(keys, string(k))
		return nil
	}))
	t.Equal([]string{"a b", "c"}, keys)
}
