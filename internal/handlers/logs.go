package handlers

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	helpers "ecowsco/internal/utils/helpres"
)

// AdminLogsHandler: просмотр JSON-логов приложения из админки.
// Читает текущий app.log и ротированные lumberjack-файлы app-<timestamp>.log[.gz].
type AdminLogsHandler struct {
	LogDir string
	now    func() time.Time
}

func NewAdminLogsHandler(logDir string) *AdminLogsHandler {
	return &AdminLogsHandler{LogDir: logDir, now: time.Now}
}

var reDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type logsResponse struct {
	Day        string            `json:"day"`
	Items      []json.RawMessage `json:"items"`
	NextCursor int               `json:"next_cursor"`
}

// GetLogs godoc
// @Summary Логи приложения за день
// @Tags admin
// @Produce json
// @Param day query string false "Дата (YYYY-MM-DD), по умолчанию сегодня"
// @Param level query string false "CSV уровней: debug,info,warn,error"
// @Param q query string false "Поиск по подстроке"
// @Param limit query int false "Лимит (по умолч. 200, макс. 1000)"
// @Param cursor query int false "Сколько строк пропустить"
// @Success 200 {object} logsResponse
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/logs [get]
func (h *AdminLogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	day := query.Get("day")
	if day == "" {
		day = h.now().Format("2006-01-02")
	}
	if !reDay.MatchString(day) {
		helpers.Error(w, http.StatusBadRequest, "bad day")
		return
	}

	levels := map[string]bool{}
	for _, l := range strings.Split(query.Get("level"), ",") {
		if l = strings.ToUpper(strings.TrimSpace(l)); l != "" {
			levels[l] = true
		}
	}
	q := strings.ToLower(strings.TrimSpace(query.Get("q")))
	limit := clampAtoi(query.Get("limit"), 200, 1, 1000)
	cursor := clampAtoi(query.Get("cursor"), 0, 0, 10_000_000)

	files, err := h.filesForDay(day)
	if err != nil || len(files) == 0 {
		helpers.Error(w, http.StatusNotFound, "no logs for this day")
		return
	}

	resp := logsResponse{Day: day, Items: []json.RawMessage{}, NextCursor: cursor}
	lineNo := 0
	forEachLine(files, func(raw []byte) bool {
		lineNo++
		if lineNo <= cursor {
			return true
		}
		resp.NextCursor = lineNo

		var entry struct {
			Level string `json:"level"`
		}
		// консольный формат и мусор пропускаем
		if json.Unmarshal(raw, &entry) != nil {
			return true
		}
		if len(levels) > 0 && !levels[strings.ToUpper(entry.Level)] {
			return true
		}
		if q != "" && !strings.Contains(strings.ToLower(string(raw)), q) {
			return true
		}

		resp.Items = append(resp.Items, append(json.RawMessage{}, raw...))
		return len(resp.Items) < limit
	})

	helpers.Raw(w, http.StatusOK, resp)
}

// filesForDay: ротированные файлы с датой в имени плюс app.log, если день сегодняшний.
func (h *AdminLogsHandler) filesForDay(day string) ([]string, error) {
	entries, err := os.ReadDir(h.LogDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		// lumberjack: app-2025-09-11T12-34-56.123.log или .log.gz
		if strings.HasPrefix(name, "app-"+day) && (strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".gz")) {
			files = append(files, filepath.Join(h.LogDir, name))
		}
	}
	sort.Strings(files)

	if day == h.now().Format("2006-01-02") {
		current := filepath.Join(h.LogDir, "app.log")
		if _, err := os.Stat(current); err == nil {
			files = append(files, current)
		}
	}
	return files, nil
}

func forEachLine(files []string, handle func([]byte) bool) {
	for _, path := range files {
		if !scanFile(path, handle) {
			return
		}
	}
}

func scanFile(path string, handle func([]byte) bool) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return true
		}
		defer gz.Close()
		reader = gz
	}

	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if !handle(sc.Bytes()) {
			return false
		}
	}
	return true
}

func clampAtoi(s string, def, lo, hi int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
