package seed

import (
	"fmt"
	"os"
	"strconv"

	"adoptar/internal/auth"
	"adoptar/internal/cli"
	"adoptar/internal/common"
	"adoptar/internal/controller/models"
	"adoptar/internal/database"
	"adoptar/internal/validate"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "file",
		Short:        'f',
		DefaultValue: "./seed.yaml",
		Usage:        "path to the seed definition file",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mysql-host",
		Short:        'H',
		DefaultValue: "127.0.0.1",
		Usage:        "specifies the hostname of the database",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mysql-port",
		Short:        'P',
		DefaultValue: 3306,
		Usage:        "specifies the port which the database is listening on",
		Type:         cli.FlagTypeInteger,
	},
	{
		Name:         "mysql-database",
		Short:        'N',
		DefaultValue: "adoptar",
		Usage:        "specifies the name of the central database schema",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mysql-user",
		Short:        'U',
		DefaultValue: "adoptar",
		Usage:        "specifies the username to use to login",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "mysql-password",
		Short:        'p',
		DefaultValue: "password",
		Usage:        "specifies the password to use to login",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

type seedFile struct {
	Organizaciones []seedOrganization `yaml:"organizaciones"`
}

type seedOrganization struct {
	Nombre      string  `yaml:"nombre"`
	Slug        string  `yaml:"slug"`
	Email       *string `yaml:"email"`
	Telefono    *string `yaml:"telefono"`
	Direccion   *string `yaml:"direccion"`
	Descripcion *string `yaml:"descripcion"`

	Administradores []seedAdministrator `yaml:"administradores"`
	Animales        []seedAnimal        `yaml:"animales"`
}

type seedAdministrator struct {
	Username   string `yaml:"username"`
	Email      string `yaml:"email"`
	Password   string `yaml:"password"`
	SuperAdmin bool   `yaml:"super_admin"`
}

type seedAnimal struct {
	Nombre                string  `yaml:"nombre"`
	Especie               string  `yaml:"especie"`
	Sexo                  string  `yaml:"sexo"`
	EdadAproximada        string  `yaml:"edad_aproximada"`
	Tamanio               string  `yaml:"tamanio"`
	RazaMezcla            *string `yaml:"raza_mezcla"`
	DescripcionHistoria   string  `yaml:"descripcion_historia"`
	Castrado              bool    `yaml:"castrado"`
	Vacunado              *string `yaml:"vacunado"`
	Desparasitado         bool    `yaml:"desparasitado"`
	SocializaPerros       bool    `yaml:"socializa_perros"`
	SocializaGatos        bool    `yaml:"socializa_gatos"`
	SocializaNinos        bool    `yaml:"socializa_ninos"`
	NecesidadesEspeciales *string `yaml:"necesidades_especiales"`
	TipoHogarIdeal        *string `yaml:"tipo_hogar_ideal"`
	PublicadoPor          string  `yaml:"publicado_por"`
	ContactoRescatista    string  `yaml:"contacto_rescatista"`
	FotoPrincipal         string  `yaml:"foto_principal"`
	Foto2                 *string `yaml:"foto_2"`
	Foto3                 *string `yaml:"foto_3"`
	Foto4                 *string `yaml:"foto_4"`
	Foto5                 *string `yaml:"foto_5"`
}

var Command = &cobra.Command{
	Use:     "seed",
	Aliases: []string{"sd"},
	Short:   "Seeds organizations, administrators and animals from a definition file",
	Long:    "Seeds organizations, administrators and animals from a definition file; organizations are matched by slug and administrators by email so re-running is safe",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		seedPath := viper.GetString("file")
		seedData, err := os.ReadFile(seedPath)
		if err != nil {
			return fmt.Errorf("failed to read seed file at path[%s]: %s", seedPath, err)
		}
		var definition seedFile
		if err := yaml.Unmarshal(seedData, &definition); err != nil {
			return fmt.Errorf("failed to parse seed file at path[%s]: %s", seedPath, err)
		}
		if len(definition.Organizaciones) == 0 {
			return fmt.Errorf("failed to find any organizations in seed file at path[%s]", seedPath)
		}

		logrus.Debugf("starting logging engine...")
		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)
		logrus.Debugf("started logging engine")

		logrus.Infof("establishing connection to database...")
		databaseConnection, err := database.ConnectMysql(database.ConnectOpts{
			Host:     viper.GetString("mysql-host"),
			Port:     viper.GetInt("mysql-port"),
			Username: viper.GetString("mysql-user"),
			Password: viper.GetString("mysql-password"),
			Database: viper.GetString("mysql-database"),
		})
		if err != nil {
			return fmt.Errorf("failed to establish connection to database: %s", err)
		}
		defer databaseConnection.Close()
		logrus.Debugf("established connection to database")

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header([]any{"organization", "slug", "administrators", "animals created", "animals skipped"}...)

		for _, seedOrg := range definition.Organizaciones {
			slug := seedOrg.Slug
			if slug == "" {
				slug = validate.Slugify(seedOrg.Nombre)
			}
			if err := validate.Slug(slug); err != nil {
				return fmt.Errorf("failed to validate slug[%s] for organization[%s]: %s", slug, seedOrg.Nombre, err)
			}

			organization, err := models.UpsertOrganizationV1(models.UpsertOrganizationV1Opts{
				Db:          databaseConnection,
				Nombre:      seedOrg.Nombre,
				Slug:        slug,
				Email:       seedOrg.Email,
				Telefono:    seedOrg.Telefono,
				Direccion:   seedOrg.Direccion,
				Descripcion: seedOrg.Descripcion,
			})
			if err != nil {
				return fmt.Errorf("failed to seed organization[%s]: %s", seedOrg.Nombre, err)
			}
			logrus.Infof("seeded organization[%v] with slug[%s]", organization.Id, organization.Slug)

			var firstAdministrator *models.Administrator
			for _, seedAdmin := range seedOrg.Administradores {
				if err := validate.Email(seedAdmin.Email); err != nil {
					return fmt.Errorf("failed to validate email[%s] for organization[%s]: %s", seedAdmin.Email, seedOrg.Nombre, err)
				}
				password := seedAdmin.Password
				if password == "" {
					password, err = cli.PromptPassword(fmt.Sprintf("password for administrator[%s]", seedAdmin.Email))
					if err != nil {
						return fmt.Errorf("failed to read password for administrator[%s]: %s", seedAdmin.Email, err)
					}
				}
				passwordHash, err := auth.HashPassword(password)
				if err != nil {
					return fmt.Errorf("failed to hash password for administrator[%s]: %s", seedAdmin.Email, err)
				}
				administrator, err := models.UpsertAdministratorV1(models.UpsertAdministratorV1Opts{
					Db:             databaseConnection,
					OrganizacionId: organization.Id,
					Username:       seedAdmin.Username,
					Email:          seedAdmin.Email,
					PasswordHash:   passwordHash,
					EsSuperAdmin:   seedAdmin.SuperAdmin,
				})
				if err != nil {
					return fmt.Errorf("failed to seed administrator[%s]: %s", seedAdmin.Email, err)
				}
				logrus.Infof("seeded administrator[%v] with email[%s]", administrator.Id, administrator.Email)
				if firstAdministrator == nil {
					firstAdministrator = administrator
				}
			}

			animalsCreated := 0
			animalsSkipped := 0
			if len(seedOrg.Animales) > 0 {
				if firstAdministrator == nil {
					logrus.Warnf("skipping animals for organization[%s]: no administrators defined", seedOrg.Nombre)
					animalsSkipped = len(seedOrg.Animales)
				} else {
					existingAnimals, err := models.ListAnimalsV1(models.ListAnimalsV1Opts{
						Db:             databaseConnection,
						OrganizacionId: &organization.Id,
					})
					if err != nil {
						return fmt.Errorf("failed to list animals for organization[%s]: %s", seedOrg.Nombre, err)
					}
					existingNames := map[string]bool{}
					for _, existingAnimal := range existingAnimals {
						existingNames[existingAnimal.Nombre] = true
					}
					for _, seedAnimal := range seedOrg.Animales {
						if existingNames[seedAnimal.Nombre] {
							animalsSkipped++
							continue
						}
						animalId, err := models.CreateAnimalV1(models.CreateAnimalV1Opts{
							Db:                    databaseConnection,
							OrganizacionId:        organization.Id,
							AdministradorId:       firstAdministrator.Id,
							Nombre:                seedAnimal.Nombre,
							Especie:               seedAnimal.Especie,
							Sexo:                  seedAnimal.Sexo,
							EdadAproximada:        seedAnimal.EdadAproximada,
							Tamanio:               seedAnimal.Tamanio,
							RazaMezcla:            seedAnimal.RazaMezcla,
							DescripcionHistoria:   seedAnimal.DescripcionHistoria,
							EstadoCastracion:      seedAnimal.Castrado,
							EstadoVacunacion:      seedAnimal.Vacunado,
							EstadoDesparasitacion: seedAnimal.Desparasitado,
							SocializaPerros:       seedAnimal.SocializaPerros,
							SocializaGatos:        seedAnimal.SocializaGatos,
							SocializaNinos:        seedAnimal.SocializaNinos,
							NecesidadesEspeciales: seedAnimal.NecesidadesEspeciales,
							TipoHogarIdeal:        seedAnimal.TipoHogarIdeal,
							PublicadoPor:          seedAnimal.PublicadoPor,
							ContactoRescatista:    seedAnimal.ContactoRescatista,
							FotoPrincipal:         seedAnimal.FotoPrincipal,
							Foto2:                 seedAnimal.Foto2,
							Foto3:                 seedAnimal.Foto3,
							Foto4:                 seedAnimal.Foto4,
							Foto5:                 seedAnimal.Foto5,
						})
						if err != nil {
							return fmt.Errorf("failed to seed animal[%s] for organization[%s]: %s", seedAnimal.Nombre, seedOrg.Nombre, err)
						}
						logrus.Debugf("seeded animal[%v] with name[%s]", animalId, seedAnimal.Nombre)
						animalsCreated++
					}
				}
			}

			table.Append([]string{
				organization.Nombre,
				organization.Slug,
				strconv.Itoa(len(seedOrg.Administradores)),
				strconv.Itoa(animalsCreated),
				strconv.Itoa(animalsSkipped),
			})
		}

		table.Render()
		return nil
	},
}
