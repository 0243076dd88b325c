package intl

import "golang.org/x/text/language"

var translations = map[language.Tag]map[string]string{
	language.English: {
		"status_filter_title":            "Status",
		"status_filter_option_all":       "All",
		"status_filter_option_ongoing":   "Ongoing",
		"status_filter_option_completed": "Completed",
		"status_filter_option_hiatus":    "Hiatus",
		"status_filter_option_dropped":   "Dropped",

		"type_filter_title":         "Type",
		"type_filter_option_all":    "All",
		"type_filter_option_manga":  "Manga",
		"type_filter_option_manhwa": "Manhwa",
		"type_filter_option_manhua": "Manhua",
		"type_filter_option_comic":  "Comic",

		"order_by_filter_title":         "Sort by",
		"order_by_filter_default":       "Default",
		"order_by_filter_az":            "A-Z",
		"order_by_filter_za":            "Z-A",
		"order_by_filter_latest_update": "Latest Update",
		"order_by_filter_latest_added":  "Latest Added",
		"order_by_filter_popular":       "Popular",

		"genre_filter_title":      "Genre",
		"genre_exclusion_warning": "Genre exclusion is not available for all sources",
		"genre_missing_warning":   "Press 'Reset' to attempt to show the genres",

		"project_filter_title":        "Filter Project",
		"project_filter_warning":      "NOTE: Can't be used with other filter!",
		"project_filter_name":         "%s Project List page",
		"project_filter_all_manga":    "Show all manga",
		"project_filter_only_project": "Show only project manga",

		"alt_names_heading":   "Alternative Name: ",
		"text_search_warning": "Note: Can't be used with text search!",
		"restart_app":         "Restart the app to apply the new setting.",
	},
	language.Indonesian: {
		"status_filter_title":            "Status",
		"status_filter_option_all":       "Semua",
		"status_filter_option_ongoing":   "Berlangsung",
		"status_filter_option_completed": "Tamat",
		"status_filter_option_hiatus":    "Hiatus",
		"status_filter_option_dropped":   "Dihentikan",

		"type_filter_title":      "Tipe",
		"type_filter_option_all": "Semua",

		"order_by_filter_title":         "Urutkan",
		"order_by_filter_default":       "Bawaan",
		"order_by_filter_latest_update": "Update Terbaru",
		"order_by_filter_latest_added":  "Terbaru Ditambahkan",
		"order_by_filter_popular":       "Populer",

		"genre_filter_title":      "Genre",
		"genre_exclusion_warning": "Pengecualian genre tidak tersedia untuk semua sumber",
		"genre_missing_warning":   "Tekan 'Reset' untuk mencoba menampilkan genre",

		"project_filter_title":        "Filter Proyek",
		"project_filter_warning":      "CATATAN: Tidak dapat digunakan dengan filter lain!",
		"project_filter_name":         "%s Daftar Proyek",
		"project_filter_all_manga":    "Tampilkan semua manga",
		"project_filter_only_project": "Tampilkan hanya manga proyek",

		"alt_names_heading": "Nama Alternatif: ",
		"restart_app":       "Mulai ulang aplikasi untuk menerapkan pengaturan baru.",
	},
}
