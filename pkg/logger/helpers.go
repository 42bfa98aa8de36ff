package logger

// LogDownload logs a single image download attempt in a consistent format
func LogDownload(category string, index int, url string, success bool, err error) {
	fields := map[string]interface{}{
		"category": category,
		"index":    index,
		"url":      url,
	}

	if success {
		GetLogger().DebugWithFields("image downloaded", fields)
		return
	}

	if err != nil {
		fields["error"] = err.Error()
	}
	GetLogger().WarnWithFields("image download failed", fields)
}

// LogCategoryStart logs the beginning of a category scrape
func LogCategoryStart(category string, position, total int) {
	GetLogger().InfoWithFields("starting category", map[string]interface{}{
		"category": category,
		"position": position,
		"total":    total,
	})
}

// LogCategoryComplete logs the outcome of a category scrape
func LogCategoryComplete(category string, collected, downloaded, failed int) {
	GetLogger().InfoWithFields("category complete", map[string]interface{}{
		"category":   category,
		"collected":  collected,
		"downloaded": downloaded,
		"failed":     failed,
	})
}
