package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DotNFT/pkg/i18n"
)

func TestValidators_Localised(t *testing.T) {
	v := validators{msg: i18n.Get("ru")}

	assert.EqualError(t, v.name("ab"), "минимум 3 символов")
	assert.EqualError(t, v.description("short"), "минимум 10 символов")
	assert.EqualError(t, v.mnemonic("one two three"), "нужно ровно 12 или 24 слова")
	assert.EqualError(t, v.bucket("My-Bucket"), "имя бакета: только строчные латинские буквы, цифры, точки и дефисы")
	assert.EqualError(t, v.startNumber(3)("4294967295"), "для 3 изображений номер не больше 4294967293")

	en := validators{msg: i18n.Get("en")}
	assert.EqualError(t, en.name(" a "), "must be at least 3 characters")
	assert.EqualError(t, en.mnemonic(strings.Repeat("abandon ", 12)), "unknown word or bad checksum")
}

func TestValidators(t *testing.T) {
	v := validators{msg: i18n.Get("en")}
	dir := t.TempDir()
	img := filepath.Join(dir, "cover.PNG")
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(img, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	empty := t.TempDir()

	tests := []struct {
		name string
		fn   func(string) error
		in   string
		ok   bool
	}{
		{"required empty", v.required, "  ", false},
		{"required ok", v.required, "k", true},
		{"mnemonic word count", v.mnemonic, "one two three", false},
		{"mnemonic ok", v.mnemonic, testMnemonic, true},
		{"bucket upper", v.bucket, "My-Bucket", false},
		{"bucket ok", v.bucket, "my.bucket-1", true},
		{"name short", v.name, "ab", false},
		{"name ok", v.name, "abc", true},
		{"description short", v.description, "short", false},
		{"description ok", v.description, "long enough text", true},
		{"image missing", v.imageFile, filepath.Join(dir, "nope.png"), false},
		{"image is dir", v.imageFile, dir, false},
		{"image wrong ext", v.imageFile, txt, false},
		{"image ok", v.imageFile, img, true},
		{"folder is file", v.imageFolder, img, false},
		{"folder without images", v.imageFolder, empty, false},
		{"folder ok", v.imageFolder, dir, true},
		{"start zero", v.startNumber(1), "0", false},
		{"start negative", v.startNumber(1), "-3", false},
		{"start text", v.startNumber(1), "one", false},
		{"start ok", v.startNumber(1), " 5 ", true},
		{"start last id", v.startNumber(1), "4294967295", true},
		{"start overflows count", v.startNumber(3), "4294967294", false},
		{"start fits count", v.startNumber(3), "4294967293", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.in)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
