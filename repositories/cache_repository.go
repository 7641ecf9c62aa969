package repositories

import (
	"log"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

// CacheRepository define la interfaz para operaciones de caché
// El caché es un acelerador best-effort, nunca fuente de verdad:
// por eso Get colapsa cualquier error a un miss (bool false) y Set no
// devuelve error - los fallos se loguean y la request sigue por la base
type CacheRepository interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// cacheRepository implementa CacheRepository con dos niveles:
// ccache local en memoria y Memcached compartido
type cacheRepository struct {
	localCache      *ccache.Cache[[]byte]
	memcachedClient *memcache.Client
}

// NewCacheRepository crea una nueva instancia de CacheRepository
func NewCacheRepository(memcachedHost string) CacheRepository {
	localCache := ccache.New(ccache.Configure[[]byte]().MaxSize(1000))

	memcachedClient := memcache.New(memcachedHost)

	log.Printf("Cache repository initialized with Memcached at %s", memcachedHost)

	return &cacheRepository{
		localCache:      localCache,
		memcachedClient: memcachedClient,
	}
}

// Get obtiene un valor del caché (primero local, luego Memcached)
func (r *cacheRepository) Get(key string) ([]byte, bool) {
	// 1. Buscar en caché local primero
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		log.Printf("Cache HIT (local): key=%s", key)
		return item.Value(), true
	}

	// 2. Si no está en local, buscar en Memcached
	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if err == memcache.ErrCacheMiss {
			log.Printf("Cache MISS: key=%s", key)
			return nil, false
		}
		// Cualquier otro error (timeout, conexión) se trata igual que un miss
		log.Printf("Error getting from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	// 3. Guardar en caché local para próximas consultas
	r.localCache.Set(key, memcachedItem.Value, 5*time.Minute)
	log.Printf("Cache HIT (Memcached): key=%s, stored in local cache", key)

	return memcachedItem.Value, true
}

// Set guarda un valor en ambos niveles de caché
func (r *cacheRepository) Set(key string, value []byte, ttl time.Duration) {
	// 1. Guardar en caché local
	localTTL := ttl
	if localTTL > 5*time.Minute {
		localTTL = 5 * time.Minute
	}
	r.localCache.Set(key, value, localTTL)
	log.Printf("Cache SET (local): key=%s, ttl=%s", key, localTTL)

	// 2. Guardar en Memcached con el TTL pedido
	// Memcached usa segundos
	memcachedItem := &memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl / time.Second),
	}

	if err := r.memcachedClient.Set(memcachedItem); err != nil {
		log.Printf("Error setting cache in Memcached: key=%s, error=%v", key, err)
		return
	}

	log.Printf("Cache SET (Memcached): key=%s, ttl=%s", key, ttl)
}
