package consts

const (
	NewsStatusPublished = "Published"
	NewsStatusDraft     = "Draft"
)

// CategoryAll is the filter value that disables category filtering.
const CategoryAll = "Semua"

// NewsCategories are the categories offered by the news form.
var NewsCategories = []string{"Pendidikan", "Kesehatan", "Budaya", "Ekonomi", "Infrastruktur", "Pertanian"}

// GalleryCategories are the categories offered by the gallery form.
var GalleryCategories = []string{"Alam", "Komunitas", "Infrastruktur", "Ekonomi", "Pertanian", "Budaya"}

const (
	StaffLevelMin = 1
	StaffLevelMax = 5
)

// StaffLevelLabels names each level of the village government structure.
var StaffLevelLabels = map[int]string{
	1: "Level 1 - Pimpinan Utama",
	2: "Level 2 - Wakil Pimpinan",
	3: "Level 3 - Seksi & Fungsi",
	4: "Level 4 - Staf Senior",
	5: "Level 5 - Staf Junior",
}

// StaffPhotoPrefix groups staff photos inside the staff bucket.
const StaffPhotoPrefix = "government/"
