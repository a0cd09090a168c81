package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"DotNFT/internal/account"
	"DotNFT/internal/mint"
	"DotNFT/internal/storage"
	"DotNFT/pkg/config"
	"DotNFT/pkg/i18n"
)

// validators turn user input errors into localised inline messages.
type validators struct {
	msg i18n.Messages
}

func (v validators) required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New(v.msg.ErrRequired)
	}
	return nil
}

func (v validators) mnemonic(s string) error {
	mn := account.Normalize(s)
	if mn == "" {
		return errors.New(v.msg.ErrRequired)
	}
	if !account.WordCountOK(mn) {
		return errors.New(v.msg.ErrMnemonicWords)
	}
	if account.ValidateMnemonic(mn) != nil {
		return errors.New(v.msg.ErrMnemonicWord)
	}
	return nil
}

func (v validators) bucket(s string) error {
	if err := v.required(s); err != nil {
		return err
	}
	if config.ValidateBucket(s) != nil {
		return errors.New(v.msg.ErrBucketName)
	}
	return nil
}

func (v validators) name(s string) error {
	if mint.ValidateName(s) != nil {
		return fmt.Errorf(v.msg.ErrTooShort, mint.MinNameLen)
	}
	return nil
}

func (v validators) description(s string) error {
	if mint.ValidateDescription(s) != nil {
		return fmt.Errorf(v.msg.ErrTooShort, mint.MinDescriptionLen)
	}
	return nil
}

func (v validators) imageFile(s string) error {
	if err := v.required(s); err != nil {
		return err
	}
	st, err := os.Stat(s)
	if err != nil {
		return errors.New(v.msg.ErrFileMissing)
	}
	if !st.Mode().IsRegular() {
		return errors.New(v.msg.ErrNotAFile)
	}
	if !storage.IsImage(s) {
		return errors.New(v.msg.ErrNotImage)
	}
	return nil
}

func (v validators) imageFolder(s string) error {
	if err := v.required(s); err != nil {
		return err
	}
	st, err := os.Stat(s)
	if err != nil {
		return errors.New(v.msg.ErrFileMissing)
	}
	if !st.IsDir() {
		return errors.New(v.msg.ErrNotAFolder)
	}
	images, err := storage.ImagesInFolder(s)
	if err != nil || len(images) == 0 {
		return errors.New(v.msg.ErrNoImages)
	}
	return nil
}

// startNumber accepts a first item id that leaves room for count ids.
func (v validators) startNumber(count int) func(string) error {
	return func(s string) error {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil || n < 1 {
			return errors.New(v.msg.ErrPositiveNumber)
		}
		if mint.CheckIDRange(uint32(n), count) != nil {
			return fmt.Errorf(v.msg.ErrStartTooLarge, count, uint64(math.MaxUint32)-uint64(count)+1)
		}
		return nil
	}
}
