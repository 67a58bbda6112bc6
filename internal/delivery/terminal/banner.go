package terminal

const Banner = `
██████╗ ██╗   ██╗███████╗██╗     ██╗███████╗███████╗ █████╗ ███╗   ██╗
██╔══██╗╚██╗ ██╔╝██╔════╝██║     ██║██╔════╝██╔════╝██╔══██╗████╗  ██║
██║  ██║ ╚████╔╝ █████╗  ██║     ██║███████╗███████╗███████║██╔██╗ ██║
██║  ██║  ╚██╔╝  ██╔══╝  ██║     ██║╚════██║╚════██║██╔══██║██║╚██╗██║
██████╔╝   ██║   ██║     ███████╗██║███████║███████║██║  ██║██║ ╚████║
╚═════╝    ╚═╝   ╚═╝     ╚══════╝╚═╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝
                                                                      `
