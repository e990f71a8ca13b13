// Package versionhttp реализует HTTP API хранилища версий анкеты и раздачу фронтенда.
// Основные эндпоинты:
//   - GET /api/latest-version — последняя по номеру версия (черновик v0 тоже участвует).
//   - POST /api/save-version — перезаписывает черновик v0.json телом запроса.
//   - POST /api/submit — финализирует черновик в v<max+1>.json, 400 если черновика нет.
//   - POST /api/reset — удаляет черновик; отсутствие черновика ошибкой не считается.
//   - GET /health — наличие каталогов фронтенда и версий.
//   - GET /metrics — метрики Prometheus (если включены).
//   - POST /admin/gc — однократная очистка брошенных временных файлов.
//   - GET /* — статические файлы фронтенда с откатом на index.html.
package versionhttp
