package storage

import "errors"

var (
	// ErrKeyNotFound значение под ключом не сохранено
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageClosed хранилище уже закрыто
	ErrStorageClosed = errors.New("storage is closed")

	// ErrBucketNotFound в файле БД нет ожидаемого bucket
	ErrBucketNotFound = errors.New("bucket not found")

	// ErrCorruptValue сохраненное значение имеет неверный формат
	ErrCorruptValue = errors.New("corrupt stored value")
)
