package shell

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/boggler/config"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"load -file /path/to/words.txt",
			&shellcmd{"load", nil, map[string]string{"file": "/path/to/words.txt"}},
			nil},
		{"board RAELMOFSTEOKNATI",
			&shellcmd{"board", []string{"RAELMOFSTEOKNATI"}, map[string]string{}},
			nil},
		{"board RAEL MOFS TEOK NATI",
			&shellcmd{"board",
				[]string{"RAEL", "MOFS", "TEOK", "NATI"},
				map[string]string{}},
			nil},
		{`load -file "/tmp/my words.txt"`,
			&shellcmd{"load", nil, map[string]string{"file": "/tmp/my words.txt"}},
			nil},
		{"load NWL23 -file",
			nil, errWrongOptionSyntax},
	}
	for _, c := range cases {
		cmd, err := extractFields(c.line)
		is.Equal(cmd, c.expCmd)
		is.Equal(err, c.expErr)
	}
}

func TestSet(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(nil))
	sc := &ShellController{config: cfg}

	resp, err := sc.set([]string{"default-lexicon", "CSW24"})
	is.NoErr(err)
	is.Equal(resp.message, "default-lexicon: CSW24")
	is.Equal(cfg.GetString("default-lexicon"), "CSW24")

	// No args shows every settable option and the new value.
	resp, err = sc.set(nil)
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "default-lexicon: CSW24"))
	is.True(strings.Contains(resp.message, "data-path:"))
}

func TestSetBadInput(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load(nil))
	sc := &ShellController{config: cfg}

	_, err := sc.set([]string{"no-such-option", "x"})
	is.True(err != nil)

	_, err = sc.set([]string{"default-lexicon"})
	is.True(err != nil)
}

func TestFirstRunHint(t *testing.T) {
	is := is.New(t)
	hint := firstRunHint("NWL23", "/opt/boggler/data/lexica")
	is.True(strings.Contains(hint, "NWL23.txt"))
	is.True(strings.Contains(hint, "/opt/boggler/data/lexica"))
	is.True(strings.Contains(hint, "load -file"))
}
