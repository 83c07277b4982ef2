package gconf

import (
	"encoding/json"
	"testing"

	"github.com/cascade-one/cascade"
	"github.com/cascade-one/cascade/cascadetest"
	"github.com/cascade-one/cascade/errors"
	"github.com/cascade-one/cascade/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Owner cascade.Address `json:"owner"`
	Num   int64           `json:"num"`
	Name  string          `json:"name"`
}

func (c *testConfig) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *testConfig) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *testConfig) Validate() error {
	if c.Num < 0 {
		return errors.Wrap(errors.ErrModel, "negative num")
	}
	return nil
}

func (c *testConfig) GetOwner() cascade.Address {
	return c.Owner
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	src := testConfig{Num: 3, Name: "foo"}
	require.NoError(t, Save(db, "mypkg", &src))

	var dst testConfig
	require.NoError(t, Load(db, "mypkg", &dst))
	assert.Equal(t, src, dst)

	if err := Load(db, "unknown", &dst); !errors.ErrNotFound.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

func TestSaveValidates(t *testing.T) {
	db := store.MemStore()
	err := Save(db, "mypkg", &testConfig{Num: -1})
	if !errors.ErrModel.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()

	opts := cascade.Options{
		"conf": json.RawMessage(`{"mypkg": {"num": 42, "name": "genesis"}}`),
	}
	var conf testConfig
	require.NoError(t, InitConfig(db, opts, "mypkg", &conf))
	assert.EqualValues(t, 42, conf.Num)

	var loaded testConfig
	require.NoError(t, Load(db, "mypkg", &loaded))
	assert.Equal(t, "genesis", loaded.Name)

	// missing package configuration is an error
	if err := InitConfig(db, opts, "otherpkg", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("got error: %+v", err)
	}
}

type updateConfigMsg struct {
	Patch *testConfig
}

func (updateConfigMsg) Path() string             { return "mypkg/update_configuration" }
func (updateConfigMsg) Validate() error          { return nil }
func (updateConfigMsg) Marshal() ([]byte, error) { panic("not implemented") }
func (*updateConfigMsg) Unmarshal([]byte) error  { panic("not implemented") }

func TestUpdateConfigurationHandler(t *testing.T) {
	owner := cascadetest.NewCondition()
	stranger := cascadetest.NewCondition()

	cases := map[string]struct {
		init    *testConfig
		signer  cascade.Condition
		patch   *testConfig
		wantErr *errors.Error
		wantNum int64
	}{
		"owner can update": {
			init:    &testConfig{Owner: owner.Address(), Num: 1},
			signer:  owner,
			patch:   &testConfig{Num: 2},
			wantNum: 2,
		},
		"zero fields do not overwrite": {
			init:    &testConfig{Owner: owner.Address(), Num: 7, Name: "keep"},
			signer:  owner,
			patch:   &testConfig{Name: "changed"},
			wantNum: 7,
		},
		"stranger cannot update": {
			init:    &testConfig{Owner: owner.Address(), Num: 1},
			signer:  stranger,
			patch:   &testConfig{Num: 2},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			require.NoError(t, Save(db, "mypkg", tc.init))

			auth := &cascadetest.Auth{Signer: tc.signer}
			h := NewUpdateConfigurationHandler("mypkg", &testConfig{}, auth, nil)

			tx := &cascadetest.Tx{Msg: &updateConfigMsg{Patch: tc.patch}}
			_, err := h.Deliver(nil, db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err != nil {
				return
			}

			var conf testConfig
			require.NoError(t, Load(db, "mypkg", &conf))
			assert.Equal(t, tc.wantNum, conf.Num)
		})
	}
}
