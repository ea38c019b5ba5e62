package utils

import (
	"io"
	"net/http"
	"net/mail"
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidatePassword enforces the registration password rules.
func ValidatePassword(password, confirm string) (bool, string) {
	if password != confirm {
		return false, "Password tidak cocok"
	}
	if len(password) < 6 {
		return false, "Password minimal 6 karakter"
	}
	if len(password) > 72 {
		// bcrypt ignores everything past 72 bytes
		return false, "Password maksimal 72 karakter"
	}
	return true, ""
}

func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "Email wajib diisi"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false, "Format email tidak valid"
	}
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return false, "Format email tidak valid"
	}
	return true, ""
}

// ValidateSlug accepts lowercase words joined by single hyphens.
func ValidateSlug(slug string) (bool, string) {
	if !slugPattern.MatchString(slug) {
		return false, "Slug hanya boleh berisi huruf kecil, angka dan tanda hubung"
	}
	return true, ""
}

// ValidateImageContent checks that the sniffed content type matches ext and
// rewinds reader afterwards.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "Gagal membaca isi file"
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "Gagal membaca isi file"
	}

	contentType := http.DetectContentType(buffer[:n])

	allowedTypes := map[string]map[string]bool{
		"image/jpeg":     {".jpg": true, ".jpeg": true},
		"image/png":      {".png": true},
		"image/gif":      {".gif": true},
		"image/webp":     {".webp": true},
		"image/bmp":      {".bmp": true},
		"image/x-ms-bmp": {".bmp": true},
	}
	if exts, ok := allowedTypes[contentType]; ok && exts[ext] {
		return true, ""
	}
	return false, "Jenis file (" + contentType + ") tidak sesuai dengan ekstensi (" + ext + ") atau tidak didukung"
}
