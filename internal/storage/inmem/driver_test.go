package inmem

import (
	"context"
	"testing"

	"github.com/apptime/portal-server/internal/customer"
	"github.com/apptime/portal-server/internal/permission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	driver := New()
	require.NoError(t, driver.Initialize(context.Background()))
	return driver
}

func TestCustomerLifecycle(t *testing.T) {
	driver := newTestDriver(t)
	ctx := context.Background()

	created, err := driver.Customers().Create(ctx, &customer.Create{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	fetched, err := driver.Customers().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created, fetched)

	require.NoError(t, driver.Customers().Delete(ctx, created.ID))
	fetched, err = driver.Customers().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestCustomerPagination(t *testing.T) {
	driver := newTestDriver(t)
	ctx := context.Background()

	creates := []*customer.Create{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		{FirstName: "John", LastName: "Smith", Email: "john@example.com"},
		{FirstName: "Eve", LastName: "Miller", Email: "eve@example.com"},
	}
	for _, create := range creates {
		_, err := driver.Customers().Create(ctx, create)
		require.NoError(t, err)
	}

	customers, n, err := driver.Customers().Get(ctx, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Len(t, customers, 2)

	customers, n, err = driver.Customers().Get(ctx, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.Len(t, customers, 1)
}

func TestGrantReplaceAndGet(t *testing.T) {
	driver := newTestDriver(t)
	ctx := context.Background()

	created, err := driver.Customers().Create(ctx, &customer.Create{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)

	grants, err := driver.Grants().ReplaceForCustomer(ctx, created.ID, []permission.Replace{
		{Name: permission.KeyAppointments, Status: permission.GrantStatusActive},
		{Name: permission.KeyLogs, Status: permission.GrantStatusInactive},
	})
	require.NoError(t, err)
	assert.Len(t, grants, 2)

	fetched, err := driver.Grants().GetByCustomerID(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, grants, fetched)

	// A replace swaps the whole set
	grants, err = driver.Grants().ReplaceForCustomer(ctx, created.ID, []permission.Replace{
		{Name: permission.KeyRooms, Status: permission.GrantStatusActive},
	})
	require.NoError(t, err)
	require.Len(t, grants, 1)
	fetched, err = driver.Grants().GetByCustomerID(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, grants, fetched)
}

func TestCustomerDeleteCascadesGrants(t *testing.T) {
	driver := newTestDriver(t)
	ctx := context.Background()

	created, err := driver.Customers().Create(ctx, &customer.Create{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.NoError(t, err)

	_, err = driver.Grants().ReplaceForCustomer(ctx, created.ID, []permission.Replace{
		{Name: permission.KeyAppointments, Status: permission.GrantStatusActive},
	})
	require.NoError(t, err)

	require.NoError(t, driver.Customers().Delete(ctx, created.ID))
	grants, err := driver.Grants().GetByCustomerID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, grants)
}
