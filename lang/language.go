package lang

import (
	"fmt"
	"sync"
)

type Locale string

const (
	LocaleEnglish    Locale = "en"
	LocaleIndonesian Locale = "id"
)

type HomeStrings struct {
	Heading       string
	ContinueLabel string
	Empty         string
}

type NovelStrings struct {
	Loading         string
	NotFound        string
	LoadFailed      string
	OrderAscending  string
	OrderDescending string
	ResumeTemplate  string
	StatusSingular  string
	StatusPlural    string
	FilterPrompt    string
	NoChapters      string
}

type ReaderStrings struct {
	LoadingDefault  string
	LoadFailed      string
	Previous        string
	Next            string
	BackToNovel     string
	Settings        string
	FontSize        string
	FontSizeNames   map[string]string
	ThemeLabel      string
	Language        string
	ScrollTop       string
	ChapterTemplate string
}

type HelpStrings struct {
	Home   string
	Novel  string
	Reader string
}

type CommonStrings struct {
	UnknownState string
	ThemeNames   map[string]string
	LanguageName map[Locale]string
}

type Strings struct {
	Home   HomeStrings
	Novel  NovelStrings
	Reader ReaderStrings
	Help   HelpStrings
	Common CommonStrings
}

var (
	mu sync.RWMutex

	translations = map[Locale]*Strings{
		LocaleEnglish: {
			Home: HomeStrings{
				Heading:       "Library",
				ContinueLabel: "Continue: %s",
				Empty:         "No novels in the catalog.",
			},
			Novel: NovelStrings{
				Loading:         "Loading chapters…",
				NotFound:        "Novel not found!",
				LoadFailed:      "Failed to load the chapter list. Make sure the site is served over HTTP (run `novel_shelf serve`), not opened as local files.",
				OrderAscending:  "Oldest first",
				OrderDescending: "Newest first",
				ResumeTemplate:  "Continue reading: %s",
				StatusSingular:  "chapter",
				StatusPlural:    "chapters",
				FilterPrompt:    "Search: ",
				NoChapters:      "This novel has no chapters yet.",
			},
			Reader: ReaderStrings{
				LoadingDefault: "Loading chapter…",
				LoadFailed:     "Failed to load chapter content: %v",
				Previous:       "‹ Previous",
				Next:           "Next ›",
				BackToNovel:    "Back to chapters",
				Settings:       "Settings",
				FontSize:       "Font size",
				FontSizeNames: map[string]string{
					"small":  "Small",
					"medium": "Medium",
					"large":  "Large",
				},
				ThemeLabel:      "Theme",
				Language:        "Language",
				ScrollTop:       "↑ Top",
				ChapterTemplate: "Chapter %d",
			},
			Help: HelpStrings{
				Home:   "enter open • T theme • L language • ctrl+c quit",
				Novel:  "enter read • o order • r resume • / filter • esc back",
				Reader: "←/→ chapter • ↑/↓ scroll • s settings • g top • esc back",
			},
			Common: CommonStrings{
				UnknownState: "Unknown state",
				ThemeNames:   map[string]string{"light": "Light", "dark": "Dark"},
				LanguageName: map[Locale]string{LocaleEnglish: "English", LocaleIndonesian: "Indonesian"},
			},
		},
		LocaleIndonesian: {
			Home: HomeStrings{
				Heading:       "Perpustakaan",
				ContinueLabel: "Lanjutkan: %s",
				Empty:         "Tidak ada novel di katalog.",
			},
			Novel: NovelStrings{
				Loading:         "Memuat daftar chapter…",
				NotFound:        "Novel tidak ditemukan!",
				LoadFailed:      "Gagal memuat daftar chapter. Pastikan Anda menjalankan website ini menggunakan server lokal (`novel_shelf serve`), bukan file://.",
				OrderAscending:  "Terlama dulu",
				OrderDescending: "Terbaru dulu",
				ResumeTemplate:  "Lanjutkan membaca: %s",
				StatusSingular:  "chapter",
				StatusPlural:    "chapter",
				FilterPrompt:    "Cari: ",
				NoChapters:      "Belum ada chapter.",
			},
			Reader: ReaderStrings{
				LoadingDefault: "Memuat chapter…",
				LoadFailed:     "Gagal memuat konten chapter: %v",
				Previous:       "‹ Sebelumnya",
				Next:           "Selanjutnya ›",
				BackToNovel:    "Kembali ke daftar chapter",
				Settings:       "Pengaturan",
				FontSize:       "Ukuran huruf",
				FontSizeNames: map[string]string{
					"small":  "Kecil",
					"medium": "Sedang",
					"large":  "Besar",
				},
				ThemeLabel:      "Tema",
				Language:        "Bahasa",
				ScrollTop:       "↑ Atas",
				ChapterTemplate: "Chapter %d",
			},
			Help: HelpStrings{
				Home:   "enter buka • T tema • L bahasa • ctrl+c keluar",
				Novel:  "enter baca • o urutan • r lanjutkan • / cari • esc kembali",
				Reader: "←/→ chapter • ↑/↓ gulir • s pengaturan • g atas • esc kembali",
			},
			Common: CommonStrings{
				UnknownState: "Status tidak dikenal",
				ThemeNames:   map[string]string{"light": "Terang", "dark": "Gelap"},
				LanguageName: map[Locale]string{LocaleEnglish: "Inggris", LocaleIndonesian: "Indonesia"},
			},
		},
	}

	availableLocales = []Locale{
		LocaleEnglish,
		LocaleIndonesian,
	}

	currentLocale = LocaleEnglish
	current       = translations[currentLocale]
)

func AvailableLocales() []Locale {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Locale, len(availableLocales))
	copy(out, availableLocales)
	return out
}

func SetLocale(loc Locale) bool {
	mu.Lock()
	defer mu.Unlock()
	strings, ok := translations[loc]
	if !ok {
		return false
	}
	currentLocale = loc
	current = strings
	return true
}

// NextLocale returns the locale after loc in AvailableLocales, wrapping around.
func NextLocale(loc Locale) Locale {
	locales := AvailableLocales()
	for i, l := range locales {
		if l == loc {
			return locales[(i+1)%len(locales)]
		}
	}
	return locales[0]
}

func CurrentLocale() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return currentLocale
}

func Active() *Strings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func LanguageName(loc Locale) string {
	s := Active()
	if name, ok := s.Common.LanguageName[loc]; ok {
		return name
	}
	return string(loc)
}

// ChapterTitle is the fallback label of the zero-based chapter index.
func ChapterTitle(index int) string {
	s := Active()
	return fmt.Sprintf(s.Reader.ChapterTemplate, index+1)
}

func ResumeLabel(title string) string {
	return fmt.Sprintf(Active().Novel.ResumeTemplate, title)
}

func ContinueLabel(title string) string {
	return fmt.Sprintf(Active().Home.ContinueLabel, title)
}

func ReaderLoadFailed(err error) string {
	return fmt.Sprintf(Active().Reader.LoadFailed, err)
}

func FontSizeName(name string) string {
	if v, ok := Active().Reader.FontSizeNames[name]; ok {
		return v
	}
	return name
}

func ThemeName(theme string) string {
	if v, ok := Active().Common.ThemeNames[theme]; ok {
		return v
	}
	return theme
}
