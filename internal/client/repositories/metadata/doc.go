// Implementations:
//
//   - SQLiteRepository: the default, backed by the local database file.
//   - MemoryRepository: process-local, used with the "memory" storage driver
//     and as a fake in tests.
//   - RedisRepository: shares slots across devices through a Redis server.
//
// Every implementation treats values as opaque bytes; the stores decide the
// encoding.
package metadata
