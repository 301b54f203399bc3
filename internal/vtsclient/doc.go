// Package vtsclient реализует WebSocket-клиент публичного API VTube Studio.
// Клиент подключается к локальному инстансу (ws://host:port), проходит
// хендшейк выдачи токена и аутентификацию, отправляет типизированные
// запросы (Statistics, CurrentModel, TriggerHotkey, ...) и доставляет
// пуш-события (ModelMovedEvent, HotkeyTriggeredEvent, ...) в
// зарегистрированные обработчики.
//
// Устройство сессии:
//   - Один приёмный цикл читает сокет и сопоставляет ответы ожидающим
//     запросам по requestID; порядок прихода ответов произволен.
//   - Пуш-события уходят в очередь диспетчера; обработчики выполняются
//     пачками параллельно и не тормозят приёмный цикл.
//   - Запись в сокет сериализована (мьютекс + write-deadline).
//   - Закрытие идемпотентно; все ожидающие запросы отклоняются с
//     ErrConnectionClosed.
//
// Пример:
//
//	vts := vtsclient.New(vtsclient.Config{
//	    PluginName:      "MyPlugin",
//	    PluginDeveloper: "Developer",
//	    TokenFile:       "vts_token.txt",
//	    SaveToken:       true,
//	})
//	token, err := vts.Start(ctx)
//	if err != nil { log.Fatal(err) }
//	defer vts.Close()
//
//	vts.OnEvent(vtsapi.EventTypeModelMoved, func(ev *vtsclient.Event) error {
//	    data := ev.Data.(*vtsapi.ModelMovedEventData)
//	    fmt.Println("model moved:", data.ModelID)
//	    return nil
//	})
//	if _, err := vts.SubscribeEvent(ctx, vtsapi.EventTypeModelMoved, nil); err != nil {
//	    log.Fatal(err)
//	}
package vtsclient
